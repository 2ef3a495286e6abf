package prompts

import (
	"fmt"
	"strings"
)

// Vanilla builds the prompt for a plain HTML/CSS/JS project: a fixed 3-file
// output skeleton enriched with real photo URLs. A non-nil Customization
// adds branding, social and contact blocks; formerly separate plain and
// enhanced builders, now one parameterized path.
func (b *Builder) Vanilla(description string, cust *Customization) string {
	imgs := b.fetchImages(description)

	var p strings.Builder

	fmt.Fprintf(&p, "\nCreate a complete, professional website based on: %s\n", description)
	p.WriteString(customizationBlocks(cust))

	title := "Website Title"
	bodyComment := "<!-- Your HTML here -->"
	cssVars := ""
	if cust != nil {
		branding := cust.Branding.WithDefaults()
		tagline := branding.Tagline
		if tagline == "" {
			tagline = "[Create tagline]"
		}
		title = branding.CompanyName
		bodyComment = fmt.Sprintf("<!-- Use company name: %s -->\n    <!-- Use tagline: %s -->", branding.CompanyName, tagline)
		cssVars = fmt.Sprintf(":root {\n    --primary-color: %s;\n    --secondary-color: %s;\n}\n\n", branding.PrimaryColor, branding.SecondaryColor)
	}

	fmt.Fprintf(&p, `
You must output exactly 3 files in this format:

FILE: index.html
`+"```html"+`
<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>%s</title>
    <link rel="stylesheet" href="style.css">
</head>
<body>
    %s
    <script src="script.js"></script>
</body>
</html>
`+"```"+`

FILE: style.css
`+"```css"+`
%sbody {
    margin: 0;
    padding: 0;
    font-family: Arial, sans-serif;
}
`+"```"+`

FILE: script.js
`+"```javascript"+`
console.log('Website loaded');
`+"```"+`
`, title, bodyComment, cssVars)

	p.WriteString(imageList(imgs))

	if cust != nil {
		branding := cust.Branding.WithDefaults()
		tagline := branding.Tagline
		if tagline == "" {
			tagline = "[Create appropriate tagline]"
		}
		fmt.Fprintf(&p, `
CRITICAL REQUIREMENTS:

1. BRANDING:
   - Use the exact company name: %s
   - Include tagline: %s
   - Use primary color %s for main elements
   - Use secondary color %s for accents

2. IMAGES:
   - Use the EXACT image URLs provided above
   - Make images responsive with CSS
   - Add proper alt text

3. SOCIAL MEDIA & CONTACT:
   - Include footer with all social media links provided
   - Add contact section with email, phone, and address if provided
   - Use appropriate icons (emoji or Unicode)

4. DESIGN:
   - Start each file with "FILE: filename"
   - Wrap code in triple backticks
   - Modern, responsive design
   - Smooth animations
`, branding.CompanyName, tagline, branding.PrimaryColor, branding.SecondaryColor)
		return p.String()
	}

	p.WriteString(`
CRITICAL IMAGE REQUIREMENTS:

1. USE THE EXACT IMAGE URLS PROVIDED ABOVE
   - Copy the full URL exactly as shown
   - These are real, high-quality photos from Pexels
   - They match the website topic perfectly

2. HOW TO USE IMAGES:
   - For hero section: Use image 1 or 2
   - For gallery/cards: Use different images (3, 4, 5, etc.)
   - Example: <img src="PASTE_EXACT_URL_HERE" alt="Description">

3. IMAGE STYLING:
   - Make images responsive: width: 100%; height: auto;
   - Add object-fit: cover; for hero images
   - Use border-radius for modern look
   - Add box-shadow for depth

4. IF YOU NEED MORE IMAGES:
   - Use CSS gradients as backgrounds
   - Add emoji icons for decoration
   - But prioritize using the provided Pexels images

ABSOLUTELY REQUIRED:
- Use the EXACT URLs provided above
- Do NOT modify or shorten the URLs
- Do NOT use placeholder.com or any other service
- Every <img> tag must use a URL from the list above

DESIGN REQUIREMENTS:
- Start each file with "FILE: filename"
- Wrap code in triple backticks
- Make it fully responsive (mobile-friendly)
- Modern, professional design
- Smooth animations and transitions
- Beautiful typography
`)
	return p.String()
}

// React builds the prompt for a React project, same optional customization
// handling as Vanilla.
func (b *Builder) React(description string, cust *Customization) string {
	imgs := b.fetchImages(description)

	var p strings.Builder

	fmt.Fprintf(&p, "\nCreate a complete React application based on: %s\n", description)
	p.WriteString(customizationBlocks(cust))

	appBody := "<h1>Hello World</h1>"
	cssVars := ""
	if cust != nil {
		branding := cust.Branding.WithDefaults()
		tagline := branding.Tagline
		if tagline == "" {
			tagline = "[Create tagline]"
		}
		appBody = fmt.Sprintf("<h1>%s</h1>\n      <p>%s</p>", branding.CompanyName, tagline)
		cssVars = fmt.Sprintf(":root {\n  --primary-color: %s;\n  --secondary-color: %s;\n}\n\n", branding.PrimaryColor, branding.SecondaryColor)
	}

	fmt.Fprintf(&p, `
You must output files in this format:

FILE: App.jsx
`+"```jsx"+`
import React, { useState } from 'react';
import './App.css';

function App() {
  return (
    <div className="App">
      %s
    </div>
  );
}

export default App;
`+"```"+`

FILE: App.css
`+"```css"+`
%s.App {
  text-align: center;
}
`+"```"+`

FILE: package.json
`+"```json"+`
{
  "name": "react-app",
  "version": "0.1.0",
  "dependencies": {
    "react": "^18.2.0",
    "react-dom": "^18.2.0"
  }
}
`+"```"+`
`, appBody, cssVars)

	p.WriteString(imageList(imgs))

	if cust != nil {
		branding := cust.Branding.WithDefaults()
		tagline := branding.Tagline
		if tagline == "" {
			tagline = "[Create appropriate tagline]"
		}
		fmt.Fprintf(&p, `
CRITICAL REQUIREMENTS:

1. BRANDING:
   - Use company name: %s
   - Include tagline: %s
   - Use primary color %s for main elements
   - Use secondary color %s for accents

2. IMAGES:
   - Use the EXACT Pexels URLs provided above
   - Make images responsive with CSS

3. SOCIAL MEDIA & CONTACT:
   - Include footer component with all social media links
   - Add contact section with provided information
   - Use appropriate icons

4. DESIGN:
   - Start each file with "FILE: filename"
   - Wrap code in triple backticks
   - Modern, responsive React components
   - Use functional components with hooks
`, branding.CompanyName, tagline, branding.PrimaryColor, branding.SecondaryColor)
		return p.String()
	}

	p.WriteString(`
CRITICAL IMAGE REQUIREMENTS:
- Use the EXACT Pexels URLs provided above
- Example: <img src="EXACT_URL" alt="Description" />
- Make images responsive with CSS

DESIGN REQUIREMENTS:
- Start each file with "FILE: filename"
- Wrap code in triple backticks
- Modern, responsive React components
- Use functional components with hooks
- Include proper package.json with dependencies
`)
	return p.String()
}

// customizationBlocks renders the branding / social / contact blocks for the
// simple prompt variants. Nil customization renders nothing.
func customizationBlocks(cust *Customization) string {
	if cust == nil {
		return ""
	}
	branding := cust.Branding.WithDefaults()
	tagline := branding.Tagline
	if tagline == "" {
		tagline = "Create an appropriate tagline"
	}

	var b strings.Builder
	fmt.Fprintf(&b, `
BRANDING INFORMATION:
- Company Name: %s
- Tagline: %s
- Primary Color: %s
- Secondary Color: %s
`, branding.CompanyName, tagline, branding.PrimaryColor, branding.SecondaryColor)

	var socialLinks []string
	for _, e := range [][2]string{
		{"Instagram", cust.Social.Instagram},
		{"Twitter", cust.Social.Twitter},
		{"Facebook", cust.Social.Facebook},
		{"LinkedIn", cust.Social.LinkedIn},
		{"YouTube", cust.Social.YouTube},
	} {
		if e[1] != "" {
			socialLinks = append(socialLinks, fmt.Sprintf("- %s: %s", e[0], e[1]))
		}
	}
	if len(socialLinks) > 0 {
		b.WriteString("\nSOCIAL MEDIA - INCLUDE FOOTER WITH THESE LINKS:\n")
		b.WriteString(strings.Join(socialLinks, "\n"))
		b.WriteString("\n")
	}

	var contactItems []string
	if cust.Social.Email != "" {
		contactItems = append(contactItems, "- Email: "+cust.Social.Email)
	}
	if cust.Social.Phone != "" {
		contactItems = append(contactItems, "- Phone: "+cust.Social.Phone)
	}
	if cust.Contact.Address != "" {
		contactItems = append(contactItems, "- Address: "+cust.Contact.Address)
	}
	if len(contactItems) > 0 {
		b.WriteString("\nCONTACT INFORMATION - INCLUDE IN FOOTER/CONTACT SECTION:\n")
		b.WriteString(strings.Join(contactItems, "\n"))
		b.WriteString("\n")
	}

	return b.String()
}
