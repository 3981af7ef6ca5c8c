package endpoints

import (
	"github.com/gin-gonic/gin"

	"github.com/markaz-app/markaz/internal/http/api"
	"github.com/markaz-app/markaz/internal/http/api/public/packets"
)

// sections is the fixed top-level navigation. Clients render these in order.
var sections = []packets.SectionResponse{
	{Slug: "library", Title: "قرآن و حدیث", Icon: "📖"},
	{Slug: "prayer-times", Title: "اوقاتِ نماز", Icon: "🕌"},
	{Slug: "topics", Title: "اسلامی تعلیمات", Icon: "🕋"},
	{Slug: "kids", Title: "بچوں کا گوشہ", Icon: "🧒"},
	{Slug: "media", Title: "تصاویر اور ویڈیوز", Icon: "🖼️"},
	{Slug: "about", Title: "ہمارے بارے میں", Icon: "ℹ️"},
}

var about = packets.AboutResponse{
	Title:       "مرکز معلومات",
	Tagline:     "آپ کی اسلامی معلومات کا مرکز",
	Description: "یہ ایپلیکیشن قرآن و حدیث، اوقاتِ نماز، اسلامی تعلیمات اور بچوں کے لیے مواد ایک جگہ فراہم کرتی ہے۔",
	Features: []string{
		"قرآنی آیات مع اردو ترجمہ",
		"مستند احادیث مع حوالہ",
		"پانچ شہروں کے اوقاتِ نماز",
		"اسلامی تعلیمات: توحید، ارکانِ اسلام، طہارت",
		"بچوں کے لیے کہانیاں، دعائیں اور سرگرمیاں",
		"تصاویر اور ویڈیوز",
	},
}

// SectionsModule serves the navigation and the about page.
func SectionsModule() api.Module {
	return api.ModuleFunc(func(c *api.Controller) {
		c.PUBLIC_GET("/sections", listSections)
		c.PUBLIC_GET("/about", getAbout)
	})
}

func listSections(ctx *gin.Context) (any, *api.APIError) {
	return sections, nil
}

func getAbout(ctx *gin.Context) (any, *api.APIError) {
	return about, nil
}
