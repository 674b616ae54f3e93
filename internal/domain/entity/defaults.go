package entity

const defaultShopeeURL = "https://shopee.co.id/yourstore"

func strPtr(s string) *string { return &s }

// DefaultStoreSettings valores de marca con los que arranca una tienda nueva.
func DefaultStoreSettings() StoreSettings {
	return StoreSettings{
		Key:             StoreSettingsKey,
		StoreName:       "Golden Store",
		LogoURL:         strPtr("https://pub-cdn.sider.ai/u/U0W8H7R4X2W/web-coder/68d4014e6cd86d3975e3c196/resource/55a4522f-969b-4e9f-b5a4-8f67ffc837e4.jpg"),
		HeroHeadline:    "Koleksi Aksesoris dengan Desain Sticker yang menarik",
		HeroTagline:     "untuk Gaya Sehari-hari",
		HeroDescription: "Temukan aksesoris pilihan dari Golden Store. Desain menarik, kualitas terjamin, dan harga bersahabat, cocok untuk hadiah maupun koleksi pribadi.",
		HeroImage:       "https://i.imghippo.com/files/Cwuh6142fk.jpeg",
		WhatsappNumber:  strPtr("6281234567890"),
		Instagram:       strPtr("https://instagram.com/yourstore"),
		Facebook:        strPtr("https://facebook.com/yourstore"),
		TikTok:          strPtr("https://tiktok.com/@yourstore"),
		Shopee:          strPtr(defaultShopeeURL),
	}
}

// DefaultNavigation menú inicial: Home, Produk y el enlace externo a Shopee.
func DefaultNavigation() []NavigationItem {
	return []NavigationItem{
		{Label: "Home", URL: "#home", Order: 0, IsExternal: false},
		{Label: "Produk", URL: "#produk", Order: 1, IsExternal: false},
		{Label: "Shopee", URL: defaultShopeeURL, Order: 2, IsExternal: true},
	}
}
