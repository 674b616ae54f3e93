// Package feed genera el feed XML de productos (RSS 2.0 con el namespace de Google Merchant).
package feed

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/xml"
	"fmt"
	"net/http"
	"strconv"

	"github.com/beevik/etree"
	"github.com/ucarion/c14n"

	"github.com/jhoicas/golden-store/internal/application/catalog"
)

// NamespaceGoogle namespace de los atributos g:* de Google Merchant Center.
const NamespaceGoogle = "http://base.google.com/ns/1.0"

// maxCustomLabels Google admite custom_label_0..4.
const maxCustomLabels = 5

var _ catalog.FeedBuilder = (*Builder)(nil)

// Builder implementa catalog.FeedBuilder.
type Builder struct{}

// NewBuilder construye el builder.
func NewBuilder() *Builder { return &Builder{} }

// BuildFeed arma el documento y calcula el ETag sobre su forma canónica (C14N), así dos
// documentos con los mismos datos producen el mismo ETag.
func (b *Builder) BuildFeed(_ context.Context, snap catalog.Snapshot) ([]byte, string, error) {
	doc := etree.NewDocument()
	rss := doc.CreateElement("rss")
	rss.CreateAttr("version", "2.0")
	rss.CreateAttr("xmlns:g", NamespaceGoogle)

	ch := rss.CreateElement("channel")
	title, description := "Golden Store", ""
	if snap.Store != nil {
		title = snap.Store.StoreName
		description = snap.Store.HeroDescription
	}
	ch.CreateElement("title").SetText(title)
	ch.CreateElement("link").SetText(snap.PublicURL)
	ch.CreateElement("description").SetText(description)
	if !snap.LastModified.IsZero() {
		ch.CreateElement("lastBuildDate").SetText(snap.LastModified.UTC().Format(http.TimeFormat))
	}

	for _, p := range snap.Products {
		item := ch.CreateElement("item")
		item.CreateElement("g:id").SetText(p.ID)
		item.CreateElement("title").SetText(p.Name)
		item.CreateElement("description").SetText(p.Description)
		item.CreateElement("link").SetText(p.ShopeeURL)
		item.CreateElement("guid").SetText(p.Slug)
		item.CreateElement("g:image_link").SetText(p.Image)
		item.CreateElement("g:price").SetText(catalog.MerchantPrice(p.Price))
		item.CreateElement("g:availability").SetText("in stock")
		item.CreateElement("g:condition").SetText("new")
		for i, tag := range p.Tags {
			if i >= maxCustomLabels {
				break
			}
			item.CreateElement("g:custom_label_" + strconv.Itoa(i)).SetText(tag)
		}
	}

	doc.Indent(2)
	body, err := doc.WriteToBytes()
	if err != nil {
		return nil, "", fmt.Errorf("feed: serializar: %w", err)
	}
	etag, err := ETag(body)
	if err != nil {
		return nil, "", err
	}
	return append([]byte(xml.Header), body...), etag, nil
}

// ETag devuelve `"<sha256 hex>"` del XML canonicalizado.
func ETag(doc []byte) (string, error) {
	dec := xml.NewDecoder(bytes.NewReader(doc))
	dec.Entity = map[string]string{}
	canon, err := c14n.Canonicalize(dec)
	if err != nil {
		return "", fmt.Errorf("feed: canonicalizar: %w", err)
	}
	sum := sha256.Sum256(canon)
	return `"` + hex.EncodeToString(sum[:]) + `"`, nil
}
