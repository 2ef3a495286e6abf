// Package structures defines the fixed catalog of website structure
// templates and the keyword classifier that maps a free-text description
// onto one of them.
package structures

// Category identifies one of the fixed website structure templates.
type Category string

const (
	LandingPage    Category = "landing_page"
	MultiPage      Category = "multi_page"
	Portfolio      Category = "portfolio"
	Blog           Category = "blog"
	WebApplication Category = "web_application"
	Ecommerce      Category = "ecommerce"
)

// StructureInfo describes one structure template: the exact files to
// generate (order matters; generated repositories must match these paths)
// and the metadata the prompt composer keys off.
type StructureInfo struct {
	Type             Category
	Files            []string
	Description      string
	NeedsBackend     bool
	NeedsDatabase    bool
	BackendFramework string // "express" when NeedsBackend
	DatabaseType     string // "mongodb" when NeedsDatabase
}

var catalog = map[Category]StructureInfo{
	LandingPage: {
		Type: LandingPage,
		Files: []string{
			"index.html",
			"style.css",
			"script.js",
		},
		Description: "Single-page landing site",
	},
	MultiPage: {
		Type: MultiPage,
		Files: []string{
			"index.html",
			"about.html",
			"services.html",
			"contact.html",
			"css/style.css",
			"css/responsive.css",
			"js/script.js",
			"js/navigation.js",
		},
		Description: "Multi-page website with navigation",
	},
	Portfolio: {
		Type: Portfolio,
		Files: []string{
			"index.html",
			"about.html",
			"projects.html",
			"project-detail.html",
			"contact.html",
			"css/style.css",
			"css/projects.css",
			"js/script.js",
			"js/projects.js",
			"js/filter.js",
		},
		Description: "Portfolio website with project showcase",
	},
	Blog: {
		Type: Blog,
		Files: []string{
			"index.html",
			"article.html",
			"about.html",
			"contact.html",
			"css/style.css",
			"css/blog.css",
			"js/script.js",
			"js/blog.js",
		},
		Description: "Blog website with article pages",
	},
	WebApplication: {
		Type: WebApplication,
		Files: []string{
			// Frontend - all served as static from public/
			"public/index.html",
			"public/login.html",
			"public/signup.html",
			"public/dashboard.html",
			"public/css/style.css",
			"public/css/auth.css",
			"public/css/dashboard.css",
			"public/js/main.js",
			"public/js/auth.js",
			"public/js/dashboard.js",

			// Backend
			"backend/server.js",
			"backend/routes/auth.js",
			"backend/routes/users.js",
			"backend/models/User.js",
			"backend/middleware/auth.js",
			"backend/config/db.js",

			// Config / deployment
			"package.json",
			".env.example",
			".gitignore",
			"README.md",
		},
		Description:      "Production-ready full-stack web application with authentication (Render-deployable)",
		NeedsBackend:     true,
		NeedsDatabase:    true,
		BackendFramework: "express",
		DatabaseType:     "mongodb",
	},
	Ecommerce: {
		Type: Ecommerce,
		Files: []string{
			// Frontend
			"index.html",
			"products.html",
			"product-detail.html",
			"cart.html",
			"checkout.html",
			"login.html",
			"signup.html",
			"account.html",
			"css/style.css",
			"css/products.css",
			"css/cart.css",
			"js/products.js",
			"js/cart.js",
			"js/checkout.js",

			// Backend
			"backend/server.js",
			"backend/routes/products.js",
			"backend/routes/cart.js",
			"backend/routes/orders.js",
			"backend/models/Product.js",
			"backend/models/Order.js",
			"backend/models/User.js",

			// Config
			"package.json",
			"README.md",
			"database/schema.sql",
		},
		Description:      "E-commerce website with shopping cart",
		NeedsBackend:     true,
		NeedsDatabase:    true,
		BackendFramework: "express",
		DatabaseType:     "mongodb",
	},
}

// Lookup returns the StructureInfo for a category. The returned value is a
// copy; the catalog itself is never mutated.
func Lookup(c Category) StructureInfo {
	info := catalog[c]
	files := make([]string, len(info.Files))
	copy(files, info.Files)
	info.Files = files
	return info
}

// Categories lists every known category.
func Categories() []Category {
	return []Category{LandingPage, MultiPage, Portfolio, Blog, WebApplication, Ecommerce}
}
