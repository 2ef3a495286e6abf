package prompts

import (
	"fmt"
	"strings"

	"webgen_server/internal/structures"
)

// Structured builds the full generation prompt for a classified structure:
// per-file FILE: headers with fenced placeholder blocks, branding and social
// blocks, navigation requirements, and the fixed formatting rules. Backend
// and database rule blocks are appended only for structures that need them.
// The emitted per-file sections follow the FILE: + triple-backtick
// convention the response parser expects.
func (b *Builder) Structured(description string, info structures.StructureInfo, cust *Customization) string {
	var c Customization
	if cust != nil {
		c = *cust
	}
	branding := c.Branding.WithDefaults()

	var prompt strings.Builder

	fmt.Fprintf(&prompt, `
Create a complete %s based on: %s

PROJECT TYPE: %s
TOTAL FILES: %d

%s
%s
%s

%s

`,
		strings.ReplaceAll(string(info.Type), "_", " "),
		description,
		info.Description,
		len(info.Files),
		brandingSection(branding),
		socialSection(c.Social),
		navigationSection(info),
		filesSection(info.Files),
	)

	prompt.WriteString(criticalRequirements)

	if info.NeedsBackend {
		prompt.WriteString(backendRules)
	}
	if info.NeedsDatabase {
		prompt.WriteString(databaseRules)
	}

	prompt.WriteString(formatRules)

	return prompt.String()
}

func brandingSection(b Branding) string {
	tagline := b.Tagline
	if tagline == "" {
		tagline = "Your tagline here"
	}
	return fmt.Sprintf(`
BRANDING (use throughout ALL files):
- Company Name: %s
- Tagline: %s
- Primary Color: %s
- Secondary Color: %s
`, b.CompanyName, tagline, b.PrimaryColor, b.SecondaryColor)
}

func socialSection(s SocialMedia) string {
	entries := s.entries()
	if len(entries) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("\nSOCIAL MEDIA (add to footer):\n")
	for _, e := range entries {
		fmt.Fprintf(&b, "%s: %s\n", e[0], e[1])
	}
	return b.String()
}

// navigationSection lists up to 5 HTML pages for the shared navigation.
// Landing pages have no navigation block; auth pages are excluded from it.
func navigationSection(info structures.StructureInfo) string {
	if info.Type == structures.LandingPage {
		return ""
	}

	type page struct{ name, path string }
	var pages []page
	for _, f := range info.Files {
		if !strings.HasSuffix(f, ".html") {
			continue
		}
		name := pageName(f)
		if name == "Login" || name == "Signup" || name == "Sign Up" {
			continue
		}
		pages = append(pages, page{name, f})
	}
	if len(pages) > 5 {
		pages = pages[:5]
	}

	var b strings.Builder
	b.WriteString(`
NAVIGATION (include on ALL pages):
Create consistent navigation with these pages:
`)
	for _, p := range pages {
		fmt.Fprintf(&b, "- %s (links to %s)\n", p.name, p.path)
	}
	b.WriteString(`
Navigation should:
- Be responsive (hamburger menu on mobile)
- Highlight current page
- Be consistent across all pages
- Include logo/company name
`)
	return b.String()
}

// filesSection emits one FILE: header plus a fenced placeholder block per
// manifest entry, with the file's instructions embedded as a comment in the
// languages that have one.
func filesSection(files []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You must generate exactly %d files:\n\n", len(files))

	for _, f := range files {
		fmt.Fprintf(&b, "FILE: %s\n", f)
		instructions := fileInstructions(f)

		switch {
		case strings.HasSuffix(f, ".html"):
			fmt.Fprintf(&b, "```html\n<!-- %s -->\n[Your HTML code here]\n```\n\n", instructions)
		case strings.HasSuffix(f, ".css"):
			fmt.Fprintf(&b, "```css\n/* %s */\n[Your CSS code here]\n```\n\n", instructions)
		case strings.HasSuffix(f, ".js"):
			fmt.Fprintf(&b, "```javascript\n// %s\n[Your JavaScript code here]\n```\n\n", instructions)
		case strings.HasSuffix(f, ".json"):
			b.WriteString("```json\n[Your JSON code here]\n```\n\n")
		case strings.HasSuffix(f, ".md"):
			b.WriteString("```markdown\n[Your Markdown content here]\n```\n\n")
		case strings.HasSuffix(f, ".sql"):
			b.WriteString("```sql\n[Your SQL code here]\n```\n\n")
		default:
			b.WriteString("```\n[Your code here]\n```\n\n")
		}
	}
	return b.String()
}

const criticalRequirements = `
CRITICAL REQUIREMENTS:

0. EXTERNAL LIBRARIES:
   - If using Font Awesome or other CDN libraries, use SIMPLE links
   - Example: <link href="https://cdnjs.cloudflare.com/ajax/libs/font-awesome/6.0.0/css/all.min.css" rel="stylesheet">
   - NEVER include integrity="" or crossorigin="" attributes
   - These can cause parsing issues

1. CONSISTENCY ACROSS ALL PAGES:
   - Use exact same color scheme everywhere
   - Consistent header and footer on all pages
   - Same font family and sizes
   - Unified design language

2. RESPONSIVE DESIGN:
   - Mobile-first approach
   - Breakpoints: 768px (tablet), 1024px (desktop)
   - Touch-friendly buttons on mobile
   - Readable text sizes on all devices

3. FILE ORGANIZATION:
   - Use proper relative paths
   - Link CSS: <link rel="stylesheet" href="css/style.css">
   - Link JS: <script src="js/script.js"></script>
   - For nested pages, adjust paths accordingly

4. CODE QUALITY:
   - Clean, commented code
   - Semantic HTML5
   - Modern CSS (Flexbox/Grid)
   - Vanilla JavaScript (no jQuery)
   - Accessibility (ARIA labels, alt tags)

5. EXTERNAL RESOURCES:
   - DO NOT use integrity or crossorigin attributes on CDN links
   - Use simple CDN links without hashes
   - Example: <link rel="stylesheet" href="https://cdnjs.cloudflare.com/ajax/libs/font-awesome/6.0.0/css/all.min.css">
   - DO NOT include integrity="sha..." attributes
   - These cause issues and are not needed for this use case
`

const backendRules = `
6. BACKEND — PRODUCTION RULES (Render-deployable):
   a. require('dotenv').config() MUST be the first line of backend/server.js.
   b. Port: const PORT = process.env.PORT || 5000;
   c. MongoDB: mongoose.connect(process.env.MONGO_URI) — NEVER mongodb://127.0.0.1 or any hardcoded URI.
   d. Serve frontend: app.use(express.static('public'));
   e. CORS: allow all origins (see server.js instructions).
   f. Deploy commands for Render:
      - Build command: npm install
      - Start command: npm start   (which runs: node backend/server.js)
   g. Do NOT use nodemon anywhere.
   h. Never create a real .env file — only .env.example.

7. API ENDPOINTS:
   POST /api/auth/signup  — register, return JWT
   POST /api/auth/login   — login, return JWT
   GET  /api/auth/me      — return current user (protected)
   PUT  /api/users/:id    — update user (protected)

   All responses: { "success": true/false, "data": {}, "message": "" }

8. FRONTEND API CALLS:
   All fetch() calls MUST use:
     const API_BASE = window.location.origin + '/api';
   This ensures the same code works locally (http://localhost:5000) and on Render (https://yourapp.onrender.com) without any changes.
`

const databaseRules = `
9. DATABASE — MongoDB Atlas:
   - Use Mongoose with process.env.MONGO_URI (Atlas connection string).
   - NEVER use mongodb://127.0.0.1 or any local URI.
   - Database name should be derived from the project name (e.g. myapp-db).
   - Schemas must include: required fields, validation, timestamps: true.
   - Add indexes on frequently queried fields (e.g. email).
   - Do NOT assume the database or collections already exist.
`

const formatRules = `
9. IMPORTANT FORMAT:
   - Start EACH file with: FILE: path/to/filename
   - Wrap code in triple backticks with language
   - No explanations outside code blocks
   - Make it production-ready
   - Include all necessary files

10. AUTHENTICATION (if applicable):
   - JWT-based authentication
   - Password hashing with bcrypt
   - Protected routes middleware
   - Token stored in localStorage
   - Auto-redirect if not authenticated

REMEMBER:
- Every file MUST start with "FILE: filename"
- Use provided branding colors
- Make it look professional
- Add smooth animations
- Include all requested features
`
