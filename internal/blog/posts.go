package blog

// DefaultPosts returns the technical blog table in display order.
func DefaultPosts() []Post {
	return []Post{
		{
			ID:         "java",
			Title:      "Learn JAVA 20 Version features",
			Tags:       []string{"Java", "Back End", "Java 20 version"},
			ContentRef: "/markdown/post/java20.md",
		},
		{
			ID:         "java8",
			Title:      "Learn JAVA 8 Version features",
			Tags:       []string{"Java 8", "Back End", "Stream API", "Lambda Expressions", "Functional Programming"},
			ContentRef: "/markdown/post/java8.md",
		},
		{
			ID:         "javastreams",
			Title:      "Learn JAVA 8 Streams",
			Tags:       []string{"Java 8", "Back End", "Streams"},
			ContentRef: "/markdown/post/java_streams.md",
		},
		{
			ID:         "javaversions",
			Title:      "Learn JAVA 8 to 20 Version features",
			Tags:       []string{"Java", "Back End"},
			ContentRef: "/markdown/post/java_versions.md",
		},
		{
			ID:         "spring-boot",
			Title:      "Understand the Spring Boot, Rest Features",
			Tags:       []string{"Spring", "Back End", "Spring Boot 3.x", "Java 20 version"},
			ContentRef: "/markdown/post/springboot.md",
		},
		{
			ID:         "oauth2",
			Title:      "OAuth2 + Java Spring Boot Guide",
			Tags:       []string{"Spring", "Back End", "Spring Boot 3.x", "OAuth2"},
			ContentRef: "/markdown/post/oauth2.md",
		},
		{
			ID:         "hibernate",
			Title:      "Understand the Hibernate Features",
			Tags:       []string{"Hibernate", "Back End", "Java", "Spring Boot JPA"},
			ContentRef: "/markdown/post/springboot.md",
		},
		{
			ID:         "rest",
			Title:      "Learn Rest API services",
			Tags:       []string{"REST", "Spring REST", "Back End"},
			ContentRef: "/markdown/post/rest_api.md",
		},
		{
			ID:         "microservices",
			Title:      "Microservices Features",
			Tags:       []string{"Spring", "Back End", "Microservices", "Spring Cloud"},
			ContentRef: "/markdown/post/microservices.md",
		},
		{
			ID:         "ai",
			Title:      "Understanding Artificial Intelligence (AI)",
			Tags:       []string{"AI", "Machine Learning", "Data"},
			ContentRef: "/markdown/post/AI.md",
		},
		{
			ID:         "docker",
			Title:      "Create, Build, and Deploy with Docker",
			Tags:       []string{"Docker", "Containers", "DevOps"},
			ContentRef: "/markdown/post/docker.md",
		},
		{
			ID:         "compose",
			Title:      "Working with Docker Compose in Frontend Apps",
			Tags:       []string{"Frontend", "UI", "Docker"},
			ContentRef: "/markdown/post/compose.md",
		},
		{
			ID:         "flowbite",
			Title:      "Working with Flowbite in Frontend Apps",
			Tags:       []string{"Frontend", "UI", "Flowbite", "CSS", "Styles", "React"},
			ContentRef: "/markdown/post/flowbite.md",
		},
		{
			ID:         "angular",
			Title:      "Angular + REST API CRUD example",
			Tags:       []string{"Frontend", "Angular", "Rest"},
			ContentRef: "/markdown/post/angular.md",
		},
		{
			ID:         "algorithms-loops",
			Title:      "Algorithms, Loops, and Conditionals",
			Tags:       []string{"JavaScript", "Logic", "Programming"},
			ContentRef: "/markdown/post/algorithms-loops-and-conditionals.md",
		},
		{
			ID:         "http-rest",
			Title:      "Understanding HTTP and REST APIs",
			Tags:       []string{"API", "HTTP", "Backend"},
			ContentRef: "/markdown/post/http_rest.md",
		},
		{
			ID:         "intro-to-express",
			Title:      "Getting Started with Express",
			Tags:       []string{"Express", "Node.js", "Backend"},
			ContentRef: "/markdown/post/intro-to-express.md",
		},
		{
			ID:         "intro_to_express",
			Title:      "Express Basics and Middleware",
			Tags:       []string{"Express", "Server", "API"},
			ContentRef: "/markdown/post/intro_to_express.md",
		},
		{
			ID:         "hono",
			Title:      "Learn about Hono + NodeJs",
			Tags:       []string{"Node", "Server", "Hono"},
			ContentRef: "/markdown/post/hono.md",
		},
		{
			ID:         "mailgun",
			Title:      "Mailgun Authentication Express Guide",
			Tags:       []string{"Express", "Server", "Mailgun", "Node.js", "Backend"},
			ContentRef: "/markdown/post/mailgun_auth.md",
		},
		{
			ID:         "intro_to_react",
			Title:      "React Router + API integration example",
			Tags:       []string{"React", "Frontend", "JavaScript"},
			ContentRef: "/markdown/post/intro_to_react.md",
		},
		{
			ID:         "react_md",
			Title:      "React Router + Markdown Blog Guide",
			Tags:       []string{"React", "Frontend", "Markdown Files"},
			ContentRef: "/markdown/post/react_md.md",
		},
		{
			ID:         "javascript",
			Title:      "JavaScript Fundamentals",
			Tags:       []string{"JavaScript", "ES6", "Frontend"},
			ContentRef: "/markdown/post/javascript.md",
		},
		{
			ID:         "react-intro",
			Title:      "React Introduction and Setup",
			Tags:       []string{"React", "JavaScript", "Frontend"},
			ContentRef: "/markdown/post/react-intro.md",
		},
		{
			ID:         "git-branching",
			Title:      "Git Branching Simplified",
			Tags:       []string{"Git", "Version Control", "DevOps"},
			ContentRef: "/markdown/post/git-branching.md",
		},
		{
			ID:         "oml",
			Title:      "Introduction to Object Modeling Language (OML)",
			Tags:       []string{"Modeling", "Design", "Architecture"},
			ContentRef: "/markdown/post/oml.md",
		},
		{
			ID:         "ddl",
			Title:      "Data Definition Language (DDL) Explained",
			Tags:       []string{"SQL", "Database", "DDL"},
			ContentRef: "/markdown/post/ddl.md",
		},
		{
			ID:         "sql",
			Title:      "SQL Guide",
			Tags:       []string{"SQL", "Database", "Joins"},
			ContentRef: "/markdown/post/sql.md",
		},
		{
			ID:         "persona",
			Title:      "Creating User Personas for Design",
			Tags:       []string{"UX", "Design Thinking", "Personas"},
			ContentRef: "/markdown/post/persona.md",
		},
		{
			ID:         "pm-sprints",
			Title:      "Project Management and Agile Sprints",
			Tags:       []string{"Agile", "Scrum", "Project Management"},
			ContentRef: "/markdown/post/pm-sprints.md",
		},
		{
			ID:         "project-management",
			Title:      "Core Concepts of Project Management",
			Tags:       []string{"Management", "Planning", "Agile"},
			ContentRef: "/markdown/post/project-management.md",
		},
		{
			ID:         "ui-ux",
			Title:      "UI/UX Design Principles for Developers",
			Tags:       []string{"UI", "UX", "Design"},
			ContentRef: "/markdown/post/ui-ux.md",
		},
	}
}
