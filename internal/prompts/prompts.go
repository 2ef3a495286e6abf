// Package prompts composes the text prompts sent to the generation API.
//
// One parameterized Builder covers what used to be separate plain and
// "enhanced" prompt paths: branding, social and contact details are an
// optional Customization record, rendered only when present.
package prompts

import (
	"fmt"
	"path"
	"strings"

	"webgen_server/internal/images"
)

// Branding carries optional brand identity for the generated site.
// Zero values fall back to the stock defaults.
type Branding struct {
	CompanyName    string
	Tagline        string
	PrimaryColor   string
	SecondaryColor string
}

const (
	defaultCompanyName    = "My Company"
	defaultPrimaryColor   = "#667eea"
	defaultSecondaryColor = "#764ba2"
)

func (b Branding) WithDefaults() Branding {
	if b.CompanyName == "" {
		b.CompanyName = defaultCompanyName
	}
	if b.PrimaryColor == "" {
		b.PrimaryColor = defaultPrimaryColor
	}
	if b.SecondaryColor == "" {
		b.SecondaryColor = defaultSecondaryColor
	}
	return b
}

// SocialMedia holds per-platform handles; empty platforms are omitted from
// every rendered block.
type SocialMedia struct {
	Instagram string
	Twitter   string
	LinkedIn  string
	Facebook  string
	YouTube   string
	Email     string
	Phone     string
}

// entries returns the non-empty platforms in a fixed render order.
func (s SocialMedia) entries() [][2]string {
	all := [][2]string{
		{"Instagram", s.Instagram},
		{"Twitter", s.Twitter},
		{"LinkedIn", s.LinkedIn},
		{"Facebook", s.Facebook},
		{"YouTube", s.YouTube},
		{"Email", s.Email},
		{"Phone", s.Phone},
	}
	out := all[:0]
	for _, e := range all {
		if e[1] != "" {
			out = append(out, e)
		}
	}
	return out
}

// Contact holds optional mailing details for footer/contact sections.
type Contact struct {
	Address string
	City    string
	State   string
}

// Customization bundles the optional branding inputs. A nil *Customization
// means the plain prompt variant.
type Customization struct {
	Branding Branding
	Social   SocialMedia
	Contact  Contact
}

// Builder composes prompts. It holds the image client so the vanilla and
// react variants can enrich prompts with real photo URLs; prompt assembly
// itself is pure string construction.
type Builder struct {
	images *images.Client
}

func NewBuilder(img *images.Client) *Builder {
	return &Builder{images: img}
}

// pageName derives the human navigation label for an HTML page path.
func pageName(p string) string {
	name := strings.TrimSuffix(path.Base(p), ".html")
	return titleCase(strings.ReplaceAll(name, "-", " "))
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}

// imageList renders the "use these exact URLs" block, or "" when the search
// produced nothing.
func imageList(imgs []images.Image) string {
	if len(imgs) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("\n\nAVAILABLE REAL IMAGES - USE THESE EXACT URLS:\n")
	for i, img := range imgs {
		fmt.Fprintf(&b, "%d. %s (keyword: %s)\n", i+1, img.URL, img.Keyword)
	}
	return b.String()
}

// fetchImages derives keywords from the description and queries the image
// API; a nil client or empty results degrade to no image block.
func (b *Builder) fetchImages(description string) []images.Image {
	if b.images == nil {
		return nil
	}
	keywords := images.ExtractKeywords(description)
	return b.images.FetchImages(keywords, 2)
}
