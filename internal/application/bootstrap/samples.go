package bootstrap

import "github.com/jhoicas/golden-store/internal/domain/entity"

const (
	sampleWhatsapp  = "6281234567890"
	sampleImageBase = "https://pub-cdn.sider.ai/u/U0W8H7R4X2W/web-coder/68d4014e6cd86d3975e3c196/resource/"
	sampleShopee    = "https://shopee.co.id/product/999994567/"
)

// SampleProducts catálogo de muestra del comando seed (accesorios, precios en rupiah).
func SampleProducts() []entity.Product {
	wa := func() *string { s := sampleWhatsapp; return &s }
	return []entity.Product{
		{
			Slug:           "ring-aurora",
			Name:           "Cincin Aurora",
			Price:          1250000,
			Image:          sampleImageBase + "9fda7656-751a-44f7-925d-2983608efbf8.jpg",
			Description:    "Cincin statement dengan kilau kristal yang memantulkan warna aurora. Nyaman dipakai harian maupun acara formal.",
			ShopeeURL:      sampleShopee + "1234500010",
			WhatsappNumber: wa(),
			Tags:           []string{"Statement Ring", "Elegant", "Best Seller"},
		},
		{
			Slug:           "necklace-luna",
			Name:           "Kalung Luna",
			Price:          2150000,
			Image:          sampleImageBase + "81d784c1-2e19-4129-a069-8279a9f905c1.jpg",
			Description:    "Kalung minimalis dengan liontin bulan yang manis, cocok jadi hadiah maupun koleksi pribadi.",
			ShopeeURL:      sampleShopee + "1234500011",
			WhatsappNumber: wa(),
			Tags:           []string{"Kalung", "Minimalist"},
		},
		{
			Slug:           "bracelet-royale",
			Name:           "Gelang Royale",
			Price:          1890000,
			Image:          sampleImageBase + "122ce33f-63d0-4e9a-b566-29b761fbd66c.jpg",
			Description:    "Gelang kombinasi metal dan aksen matte-glossy untuk tampilan modern dan berkelas.",
			ShopeeURL:      sampleShopee + "1234500012",
			WhatsappNumber: wa(),
			Tags:           []string{"Gelang", "Modern"},
		},
		{
			Slug:           "earring-eden",
			Name:           "Anting Eden",
			Price:          990000,
			Image:          sampleImageBase + "2347c9aa-119b-4363-8fd5-6ef36c28e237.jpg",
			Description:    "Anting mungil yang ringan dengan kilau lembut, nyaman dipakai seharian.",
			ShopeeURL:      sampleShopee + "1234500013",
			WhatsappNumber: wa(),
			Tags:           []string{"Anting", "Daily"},
		},
		{
			Slug:           "watch-nova",
			Name:           "Jam Nova",
			Price:          3750000,
			Image:          sampleImageBase + "5bfd3a13-263a-45d5-aad4-c718dfccae52.jpg",
			Description:    "Jam tangan aksesoris dengan strap metal berkilau, menunjang gaya sekaligus fungsional.",
			ShopeeURL:      sampleShopee + "1234500014",
			WhatsappNumber: wa(),
			Tags:           []string{"Jam Tangan", "Limited"},
		},
		{
			Slug:           "pendant-sol",
			Name:           "Liontin Sol",
			Price:          1450000,
			Image:          sampleImageBase + "14bf167b-74c5-4435-84f5-d31defc7b554.jpg",
			Description:    "Liontin berbentuk matahari dengan detail kristal, simbol energi dan kebahagiaan.",
			ShopeeURL:      sampleShopee + "1234500015",
			WhatsappNumber: wa(),
			Tags:           []string{"Liontin", "Symbolic"},
		},
	}
}
