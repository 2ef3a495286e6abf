package prompts

import "strings"

// fileInstructions returns the generation instructions for one file in a
// structure manifest. The dispatch is keyed on path substrings and suffixes;
// it is deterministic and total: every path yields exactly one instruction.
func fileInstructions(filename string) string {
	switch {
	case strings.HasSuffix(filename, ".html"):
		switch {
		case strings.Contains(filename, "login") || strings.Contains(filename, "signup"):
			return `
This is an authentication page. Include:
- Clean, modern form design
- Email and password inputs
- "Remember me" checkbox (for login)
- "Forgot password?" link (for login)
- Terms acceptance checkbox (for signup)
- Client-side validation
- Error message display area
- Loading state handling
- Redirect logic after successful auth
`
		case strings.Contains(filename, "dashboard"):
			return `
This is a protected dashboard page. Include:
- User greeting with name
- Navigation sidebar/menu
- Main content area with cards/stats
- Quick actions section
- Logout button
- Profile link
- Responsive layout
`
		case strings.Contains(filename, "profile") || strings.Contains(filename, "settings"):
			return `
This is a user profile/settings page. Include:
- Form to edit user information
- Password change section
- Profile picture upload (placeholder)
- Save/Cancel buttons
- Success/error messages
- Validation feedback
`
		case strings.Contains(filename, "index"):
			return `
This is the homepage. Include:
- Hero section with compelling headline
- Call-to-action buttons
- Features/benefits section
- Testimonials (if applicable)
- Footer with links and info
`
		default:
			return `
Create a well-structured HTML page with:
- Proper semantic HTML5
- Consistent navigation
- Responsive design
- Accessibility features
`
		}

	case strings.HasSuffix(filename, ".css"):
		return `
Create comprehensive CSS with:
- CSS variables for colors/fonts
- Responsive breakpoints
- Modern layout (Flexbox/Grid)
- Hover effects and transitions
- Consistent spacing
- Mobile-first approach
`

	case filename == "backend/server.js" || filename == "server.js":
		return `
Create a production-ready Express.js server. STRICT RULES:

1. FIRST line: require('dotenv').config();
2. Use: const PORT = process.env.PORT || 5000;
3. MongoDB: mongoose.connect(process.env.MONGO_URI) — NEVER use hardcoded URIs.
4. CORS — allow all origins:
   app.use(cors({ origin: '*', methods: ['GET','POST','PUT','DELETE','OPTIONS'], allowedHeaders: ['Content-Type','Authorization'] }));
5. Static files: app.use(express.static('public'));
6. Body parsers: app.use(express.json()); app.use(express.urlencoded({ extended: true }));
7. Mount routes under /api/auth and /api/users.
8. Global error handler middleware at the bottom.
9. Startup logs:
   console.log(` + "`Server running on port ${PORT}`" + `);
   console.log('MongoDB connected');
10. Do NOT use nodemon — only 'node backend/server.js' in production.
`

	case strings.HasSuffix(filename, ".js"):
		switch {
		case strings.Contains(filename, "auth") && !strings.Contains(filename, "backend") && !strings.Contains(filename, "routes"):
			return `
Create authentication JavaScript with:
- A single base URL constant at the very top:
    const API_BASE = window.location.origin + '/api';
  Use this for ALL fetch calls so the app works both locally and on Render without changes.
- Form validation before submitting
- fetch() calls to ${API_BASE}/auth/login and ${API_BASE}/auth/signup
- JWT token stored in localStorage after successful auth
- Redirect to dashboard after login/signup
- Redirect to login if token missing on protected pages
- User-friendly error messages shown in the DOM
- Loading / disabled button state while request is in flight
`
		case strings.Contains(filename, "dashboard"):
			return `
Create dashboard JavaScript with:
- Check if user is authenticated
- Fetch user data from API
- Handle logout
- Update UI with user info
- Redirect to login if not authenticated
`
		case strings.Contains(filename, "routes"):
			return routesInstructions
		case strings.Contains(filename, "models"):
			return modelsInstructions
		default:
			return `
Create JavaScript with:
- Event listeners
- Form handling
- Smooth scrolling/animations
- Mobile menu toggle
- Any interactive features
`
		}

	case strings.Contains(filename, "routes"):
		return routesInstructions

	case strings.Contains(filename, "models"):
		return modelsInstructions

	case filename == "package.json":
		return `
Create package.json with:
- "main": "backend/server.js"
- Scripts MUST be exactly:
    "start": "node backend/server.js"
  Do NOT include nodemon or dev scripts.
- Dependencies: express, mongoose, bcryptjs, jsonwebtoken, dotenv, cors
- No devDependencies needed
- Proper formatting
`

	case filename == ".env.example":
		return `
Create .env.example with exactly these keys (no values for sensitive ones):
  PORT=5000
  MONGO_URI=
  JWT_SECRET=
Add a comment above each explaining what it is.
Do NOT create a real .env file.
`

	case filename == "README.md":
		return `
Create README.md with:
- Project title and description
- Features list
- Installation instructions
- Environment setup
- How to run
- API endpoints (if backend)
- Technologies used
`

	case filename == ".gitignore":
		return `
Create a .gitignore that excludes:
  node_modules/
  .env
  *.log
  .DS_Store
  dist/
  build/
`

	case strings.HasSuffix(filename, ".sql"):
		return `
Create SQL schema with:
- Table definitions
- Proper data types
- Primary keys
- Foreign keys (if needed)
- Indexes
- Sample data (optional)
`

	default:
		return "Create this file with appropriate content for its purpose."
	}
}

const routesInstructions = `
Create Express route file with:
- Use express.Router()
- Import controller or write inline logic
- Use process.env.JWT_SECRET for JWT signing/verification (NEVER hardcode)
- Password hashing with bcryptjs (saltRounds=10)
- Return consistent JSON: { success: true/false, data: {}, message: '' }
- Proper HTTP status codes (200, 201, 400, 401, 404, 500)
- try/catch on every async handler with next(err)
- For auth routes: POST /signup, POST /login, GET /me (protected)
`

const modelsInstructions = `
Create Mongoose model with:
- Schema definition
- Field validation
- Required fields
- Default values
- Timestamps
- Methods (if needed)
`
