package content

var site = SiteConfig{
	Name:         "Samarth Patel",
	Title:        "Software Engineer",
	Description:  "Software Engineer specializing in full-stack development, cloud architecture, and modern web technologies.",
	Email:        "samarthpatel2706@gmail.com",
	GitHub:       "https://github.com/samarthpatel2005",
	LinkedIn:     "https://www.linkedin.com/in/samarth-patel-051757283/",
	Twitter:      "https://twitter.com/samarthpatel",
	Domain:       "https://samarthpatel.me",
	FormEndpoint: "https://formspree.io/f/xrblwpzl",
}

var navigation = []NavItem{
	{Label: "Home", Href: "#hero"},
	{Label: "Expertise", Href: "#expertise"},
	{Label: "Projects", Href: "#projects"},
	{Label: "Tech Stack", Href: "#tech-stack"},
	{Label: "Contact", Href: "#cta"},
}

var techCategories = []TechCategory{
	{
		Key:  "frontend",
		Name: "Frontend",
		Technologies: []Technology{
			{Name: "Svelte", Icon: "🔥", Color: "from-orange-500 to-red-500"},
			{Name: "React", Icon: "⚛️", Color: "from-blue-500 to-cyan-500"},
			{Name: "TypeScript", Icon: "📘", Color: "from-blue-600 to-blue-800"},
			{Name: "Tailwind CSS", Icon: "🎨", Color: "from-cyan-500 to-blue-500"},
			{Name: "Next.js", Icon: "▲", Color: "from-gray-800 to-gray-600"},
			{Name: "SvelteKit", Icon: "🚀", Color: "from-orange-500 to-red-500"},
		},
	},
	{
		Key:  "backend",
		Name: "Backend",
		Technologies: []Technology{
			{Name: "Node.js", Icon: "🟢", Color: "from-green-500 to-green-600"},
			{Name: "Python", Icon: "🐍", Color: "from-yellow-500 to-blue-500"},
			{Name: "Express", Icon: "⚡", Color: "from-gray-600 to-gray-800"},
			{Name: "FastAPI", Icon: "🚀", Color: "from-green-400 to-blue-500"},
			{Name: "GraphQL", Icon: "📊", Color: "from-pink-500 to-purple-500"},
			{Name: "REST APIs", Icon: "🔗", Color: "from-blue-500 to-purple-500"},
		},
	},
	{
		Key:  "cloud",
		Name: "Cloud & DevOps",
		Technologies: []Technology{
			{Name: "AWS", Icon: "☁️", Color: "from-orange-400 to-orange-600"},
			{Name: "Azure", Icon: "🌐", Color: "from-blue-500 to-blue-700"},
			{Name: "Docker", Icon: "🐳", Color: "from-blue-400 to-blue-600"},
			{Name: "Kubernetes", Icon: "⚙️", Color: "from-blue-600 to-purple-600"},
			{Name: "GitHub Actions", Icon: "🔄", Color: "from-gray-700 to-gray-900"},
			{Name: "Terraform", Icon: "🏗️", Color: "from-purple-500 to-indigo-600"},
		},
	},
	{
		Key:  "database",
		Name: "Database",
		Technologies: []Technology{
			{Name: "PostgreSQL", Icon: "🐘", Color: "from-blue-600 to-blue-800"},
			{Name: "MongoDB", Icon: "🍃", Color: "from-green-500 to-green-700"},
			{Name: "Redis", Icon: "🔴", Color: "from-red-500 to-red-700"},
			{Name: "Supabase", Icon: "⚡", Color: "from-green-400 to-blue-500"},
			{Name: "Prisma", Icon: "🔷", Color: "from-blue-500 to-purple-500"},
			{Name: "SQLite", Icon: "💾", Color: "from-blue-400 to-blue-600"},
		},
	},
}

var expertiseAreas = []ExpertiseArea{
	{
		Title:        "Full-Stack Development",
		Description:  "End-to-end web application development with modern frameworks and best practices.",
		Icon:         "🌐",
		Technologies: []string{"React/Svelte", "Node.js", "TypeScript", "GraphQL"},
	},
	{
		Title:        "Mobile Development",
		Description:  "Cross-platform mobile applications with native performance and beautiful UI.",
		Icon:         "📱",
		Technologies: []string{"Flutter", "React Native", "iOS", "Android"},
	},
	{
		Title:        "Cloud Architecture",
		Description:  "Scalable cloud solutions with microservices and serverless architectures.",
		Icon:         "☁️",
		Technologies: []string{"AWS", "Azure", "Docker", "Kubernetes"},
	},
	{
		Title:        "DevOps & CI/CD",
		Description:  "Automated deployment pipelines and infrastructure as code for reliable delivery.",
		Icon:         "🚀",
		Technologies: []string{"GitHub Actions", "Jenkins", "Terraform", "Monitoring"},
	},
	{
		Title:        "Database Design",
		Description:  "Efficient database architecture for optimal performance and scalability.",
		Icon:         "🗄️",
		Technologies: []string{"PostgreSQL", "MongoDB", "Redis", "Database Optimization"},
	},
	{
		Title:        "Web Technologies",
		Description:  "Modern web technologies and frameworks for exceptional user experiences.",
		Icon:         "⚡",
		Technologies: []string{"SvelteKit", "Next.js", "Tailwind CSS", "Progressive Web Apps"},
	},
}

// Simple Icons path data, 24x24 viewBox.
const (
	githubIcon   = "M12 0c-6.626 0-12 5.373-12 12 0 5.302 3.438 9.8 8.207 11.387.599.111.793-.261.793-.577v-2.234c-3.338.726-4.033-1.416-4.033-1.416-.546-1.387-1.333-1.756-1.333-1.756-1.089-.745.083-.729.083-.729 1.205.084 1.839 1.237 1.839 1.237 1.07 1.834 2.807 1.304 3.492.997.107-.775.418-1.305.762-1.604-2.665-.305-5.467-1.334-5.467-5.931 0-1.311.469-2.381 1.236-3.221-.124-.303-.535-1.524.117-3.176 0 0 1.008-.322 3.301 1.23.957-.266 1.983-.399 3.003-.404 1.02.005 2.047.138 3.006.404 2.291-1.552 3.297-1.23 3.297-1.23.653 1.653.242 2.874.118 3.176.77.84 1.235 1.911 1.235 3.221 0 4.609-2.807 5.624-5.479 5.921.43.372.823 1.102.823 2.222v3.293c0 .319.192.694.801.576 4.765-1.589 8.199-6.086 8.199-11.386 0-6.627-5.373-12-12-12z"
	linkedInIcon = "M20.447 20.452h-3.554v-5.569c0-1.328-.027-3.037-1.852-3.037-1.853 0-2.136 1.445-2.136 2.939v5.667H9.351V9h3.414v1.561h.046c.477-.9 1.637-1.85 3.37-1.85 3.601 0 4.267 2.37 4.267 5.455v6.286zM5.337 7.433c-1.144 0-2.063-.926-2.063-2.065 0-1.138.92-2.063 2.063-2.063 1.14 0 2.064.925 2.064 2.063 0 1.139-.925 2.065-2.064 2.065zm1.782 13.019H3.555V9h3.564v11.452zM22.225 0H1.771C.792 0 0 .774 0 1.729v20.542C0 23.227.792 24 1.771 24h20.451C23.2 24 24 23.227 24 22.271V1.729C24 .774 23.2 0 22.222 0h.003z"
	twitterIcon  = "M23.953 4.57a10 10 0 01-2.825.775 4.958 4.958 0 002.163-2.723c-.951.555-2.005.959-3.127 1.184a4.92 4.92 0 00-8.384 4.482C7.69 8.095 4.067 6.13 1.64 3.162a4.822 4.822 0 00-.666 2.475c0 1.71.87 3.213 2.188 4.096a4.904 4.904 0 01-2.228-.616v.06a4.923 4.923 0 003.946 4.827 4.996 4.996 0 01-2.212.085 4.936 4.936 0 004.604 3.417 9.867 9.867 0 01-6.102 2.105c-.39 0-.779-.023-1.17-.067a13.995 13.995 0 007.557 2.209c9.053 0 13.998-7.496 13.998-13.985 0-.21 0-.42-.015-.63A9.935 9.935 0 0024 4.59z"
)
