package schema

// builtinSectionTypes returns the full section catalog. Adding a new section
// type means adding one entry here and nothing anywhere else.
func builtinSectionTypes() []SectionType {
	return []SectionType{
		{
			Type:        "hero",
			DisplayName: "Hero",
			Description: "Large opening banner with headline, subheadline, and a call-to-action button",
			DefaultContent: map[string]any{
				"headline":    "Welcome to Our Site",
				"subheadline": "We build things people love.",
				"ctaText":     "Get Started",
				"ctaLink":     "#contact",
				"alignment":   "center",
			},
			ContentSchema: map[string]FieldSpec{
				"headline":        {Kind: KindString, Required: true, MaxLength: 120},
				"subheadline":     {Kind: KindText, MaxLength: 300},
				"ctaText":         {Kind: KindString, MaxLength: 40},
				"ctaLink":         {Kind: KindURL},
				"backgroundImage": {Kind: KindURL},
				"alignment":       {Kind: KindEnum, AllowedValues: []string{"left", "center", "right"}},
			},
		},
		{
			Type:        "about",
			DisplayName: "About",
			Description: "Free-form text block introducing the company or person",
			DefaultContent: map[string]any{
				"title": "About Us",
				"body":  "Tell your visitors who you are and what you stand for.",
			},
			ContentSchema: map[string]FieldSpec{
				"title": {Kind: KindString, Required: true, MaxLength: 120},
				"body":  {Kind: KindText, Required: true, MaxLength: 2000},
				"image": {Kind: KindURL},
			},
		},
		{
			Type:        "features",
			DisplayName: "Features",
			Description: "Grid of product or service features, each with an icon, title, and description",
			DefaultContent: map[string]any{
				"title": "Features",
				"items": []any{
					map[string]any{"icon": "bolt", "title": "Fast", "description": "Everything loads in a blink."},
					map[string]any{"icon": "shield", "title": "Secure", "description": "Your data stays yours."},
					map[string]any{"icon": "sparkles", "title": "Polished", "description": "Details that delight."},
				},
			},
			ContentSchema: map[string]FieldSpec{
				"title": {Kind: KindString, MaxLength: 120},
				"items": {
					Kind: KindArray, Required: true, MinItems: 1, MaxItems: 12,
					Items: &FieldSpec{
						Kind: KindObject,
						Fields: map[string]FieldSpec{
							"icon":        {Kind: KindEnum, AllowedValues: builtinIcons},
							"title":       {Kind: KindString, Required: true, MaxLength: 80},
							"description": {Kind: KindText, MaxLength: 300},
						},
					},
				},
			},
		},
		{
			Type:        "pricing",
			DisplayName: "Pricing",
			Description: "Pricing plans laid out side by side",
			DefaultContent: map[string]any{
				"title": "Pricing",
				"plans": []any{
					map[string]any{
						"name": "Starter", "price": "$9", "period": "month",
						"features": []any{"1 project", "Email support"}, "ctaText": "Choose Starter",
					},
					map[string]any{
						"name": "Pro", "price": "$29", "period": "month",
						"features":    []any{"Unlimited projects", "Priority support"},
						"ctaText":     "Choose Pro",
						"highlighted": true,
					},
				},
			},
			ContentSchema: map[string]FieldSpec{
				"title": {Kind: KindString, MaxLength: 120},
				"plans": {
					Kind: KindArray, Required: true, MinItems: 1, MaxItems: 6,
					Items: &FieldSpec{
						Kind: KindObject,
						Fields: map[string]FieldSpec{
							"name":        {Kind: KindString, Required: true, MaxLength: 60},
							"price":       {Kind: KindString, Required: true, MaxLength: 20},
							"period":      {Kind: KindEnum, AllowedValues: []string{"month", "year", "once"}},
							"features":    {Kind: KindArray, MaxItems: 12, Items: &FieldSpec{Kind: KindString, MaxLength: 120}},
							"ctaText":     {Kind: KindString, MaxLength: 40},
							"highlighted": {Kind: KindBoolean},
						},
					},
				},
			},
		},
		{
			Type:        "team",
			DisplayName: "Team",
			Description: "Photos and roles of team members",
			DefaultContent: map[string]any{
				"title": "Meet the Team",
				"members": []any{
					map[string]any{"name": "Alex Doe", "role": "Founder"},
				},
			},
			ContentSchema: map[string]FieldSpec{
				"title": {Kind: KindString, MaxLength: 120},
				"members": {
					Kind: KindArray, Required: true, MinItems: 1, MaxItems: 24,
					Items: &FieldSpec{
						Kind: KindObject,
						Fields: map[string]FieldSpec{
							"name":  {Kind: KindString, Required: true, MaxLength: 80},
							"role":  {Kind: KindString, MaxLength: 80},
							"photo": {Kind: KindURL},
							"email": {Kind: KindEmail},
						},
					},
				},
			},
		},
		{
			Type:        "testimonials",
			DisplayName: "Testimonials",
			Description: "Customer quotes with attribution",
			DefaultContent: map[string]any{
				"title": "What People Say",
				"quotes": []any{
					map[string]any{"quote": "Simply the best tool we use.", "author": "Jamie L."},
				},
			},
			ContentSchema: map[string]FieldSpec{
				"title": {Kind: KindString, MaxLength: 120},
				"quotes": {
					Kind: KindArray, Required: true, MinItems: 1, MaxItems: 12,
					Items: &FieldSpec{
						Kind: KindObject,
						Fields: map[string]FieldSpec{
							"quote":   {Kind: KindText, Required: true, MaxLength: 500},
							"author":  {Kind: KindString, Required: true, MaxLength: 80},
							"company": {Kind: KindString, MaxLength: 80},
						},
					},
				},
			},
		},
		{
			Type:        "gallery",
			DisplayName: "Gallery",
			Description: "Image grid with optional captions",
			DefaultContent: map[string]any{
				"title": "Gallery",
				"images": []any{
					map[string]any{"url": "/images/placeholder.jpg", "caption": "A placeholder"},
				},
			},
			ContentSchema: map[string]FieldSpec{
				"title": {Kind: KindString, MaxLength: 120},
				"images": {
					Kind: KindArray, Required: true, MinItems: 1, MaxItems: 24,
					Items: &FieldSpec{
						Kind: KindObject,
						Fields: map[string]FieldSpec{
							"url":     {Kind: KindURL, Required: true},
							"caption": {Kind: KindString, MaxLength: 160},
						},
					},
				},
			},
		},
		{
			Type:        "faq",
			DisplayName: "FAQ",
			Description: "Frequently asked questions with answers",
			DefaultContent: map[string]any{
				"title": "Frequently Asked Questions",
				"items": []any{
					map[string]any{"question": "How do I get started?", "answer": "Just reach out through the contact form."},
				},
			},
			ContentSchema: map[string]FieldSpec{
				"title": {Kind: KindString, MaxLength: 120},
				"items": {
					Kind: KindArray, Required: true, MinItems: 1, MaxItems: 20,
					Items: &FieldSpec{
						Kind: KindObject,
						Fields: map[string]FieldSpec{
							"question": {Kind: KindString, Required: true, MaxLength: 200},
							"answer":   {Kind: KindText, Required: true, MaxLength: 1000},
						},
					},
				},
			},
		},
		{
			Type:        "contact",
			DisplayName: "Contact",
			Description: "Contact details and an optional contact form",
			DefaultContent: map[string]any{
				"title":    "Get in Touch",
				"email":    "hello@example.com",
				"showForm": true,
			},
			ContentSchema: map[string]FieldSpec{
				"title":    {Kind: KindString, MaxLength: 120},
				"email":    {Kind: KindEmail, Required: true},
				"phone":    {Kind: KindString, MaxLength: 40},
				"address":  {Kind: KindText, MaxLength: 300},
				"showForm": {Kind: KindBoolean},
			},
		},
		{
			Type:        "cta",
			DisplayName: "Call to Action",
			Description: "Standalone banner prompting the visitor to act",
			DefaultContent: map[string]any{
				"headline":   "Ready to start?",
				"buttonText": "Contact Us",
				"buttonLink": "#contact",
			},
			ContentSchema: map[string]FieldSpec{
				"headline":        {Kind: KindString, Required: true, MaxLength: 120},
				"buttonText":      {Kind: KindString, Required: true, MaxLength: 40},
				"buttonLink":      {Kind: KindURL},
				"backgroundColor": {Kind: KindHexColor},
			},
		},
		{
			Type:        "footer",
			DisplayName: "Footer",
			Description: "Bottom-of-page block with copyright text and links",
			DefaultContent: map[string]any{
				"text":       "© 2026 All rights reserved.",
				"showSocial": false,
			},
			ContentSchema: map[string]FieldSpec{
				"text": {Kind: KindString, MaxLength: 300},
				"links": {
					Kind: KindArray, MaxItems: 10,
					Items: &FieldSpec{
						Kind: KindObject,
						Fields: map[string]FieldSpec{
							"label": {Kind: KindString, Required: true, MaxLength: 40},
							"url":   {Kind: KindURL, Required: true},
						},
					},
				},
				"showSocial": {Kind: KindBoolean},
			},
		},
	}
}
