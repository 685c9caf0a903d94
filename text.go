package main

// NavLink is one entry in the top navigation bar.
type NavLink struct {
	Href  string
	Label string
}

// Role is a card in the "Roles I Can Do" grid.
type Role struct {
	Icon  string
	Title string
	Desc  string
}

type Project struct {
	Name        string
	Company     string
	Date        string
	Description string
	Technology  string
}

type TimelineEntry struct {
	Title    string
	Subtitle string
	Points   []string
}

// Skill links a technology to the blog post that covers it.
type Skill struct {
	Name string
	Href string
}

// SkillGroup is one progress bar on the skills page. Percentage is the
// value the bar ramps to once it scrolls into view.
type SkillGroup struct {
	Region     string
	Label      string
	Percentage int
	Skills     []Skill
}

type SoftSkill struct {
	Name string
	Icon string
	Desc string
}

type Slide struct {
	Image string
	Alt   string
}

type Video struct {
	Title string
	Embed string
}

var NavLinks = []NavLink{
	{"/", "Home"},
	{"/about", "About"},
	{"/skills", "Skills"},
	{"/portfolio", "Portfolio"},
	{"/timeline", "Timeline"},
	{"/videoblog", "Video Blog"},
	{"/technicalblog", "Technical Blog"},
	{"/contact", "Contact"},
}

var (
	OwnerName = "Srilatha"

	Tagline = `A passionate software developer with hands-on experience building scalable
	front-end and back-end solutions for global enterprises.`

	// HeroRoles cycle in the hero typewriter.
	HeroRoles = []string{
		"Full Stack Developer",
		"Backend Developer",
		"Frontend Developer",
		"UI/UX Designer",
	}

	// SectionHeadings cycle in the roles section heading.
	SectionHeadings = []string{"Roles I Can Do"}

	AboutMe = []string{
		`I earned my Bachelor’s degree in Information Technology from JNTU University, which laid the
		foundation for my passion for scalable software development.`,
		`As a full-stack developer, I’ve worked at Polaris and Cognizant for global clients such as CITI Bank,
		Maritz Inc., Anthem Inc., and ING. My expertise includes Java, Spring Boot, Hibernate, Angular, React,
		Docker, AWS, and PL/SQL.`,
		`I also had the opportunity to work on-site in Belgium for two years with the ING client, collaborating
		with diverse teams and gaining invaluable global exposure to agile development practices.`,
		`I’m known for my problem-solving mindset and love to take on complex challenges that push my creativity
		and technical limits, always focusing on designing clean, scalable, and cloud-native applications.`,
		`Outside of work, I balance my technical side with creative outlets, being passionate about travel,
		photography, and video blogging.`,
	}
)

var Roles = []Role{
	{"fa-solid fa-code", "Full Stack Developer", "Building scalable, high-performing web applications using Java, Spring Boot, Hibernate, Microservices, Angular, React, and Tailwind CSS."},
	{"fa-solid fa-server", "Backend Developer", "Designing APIs, microservices, and backend systems using Java, Spring Boot, and database optimization with PLSQL."},
	{"fa-solid fa-laptop-code", "Frontend Developer", "Developing responsive and accessible UIs with HTML, CSS, Angular, React, TypeScript, Bootstrap, and Tailwind CSS."},
	{"fa-solid fa-palette", "UI/UX Designer", "Creating intuitive and visually appealing interfaces with a focus on user flow and design consistency."},
	{"fa-solid fa-users", "Technical Mentor", "Guiding teams, mentoring junior developers, and fostering best practices in full-stack development."},
	{"fa-solid fa-cloud", "Cloud Integration Specialist", "Integrating microservices and APIs on AWS and Azure with Docker, Jenkins, and CI/CD pipelines."},
	{"fa-solid fa-layer-group", "Senior/Lead Developer", "Designing enterprise-grade architectures ensuring performance, scalability, and reliability."},
}

var Projects = []Project{
	{
		Name:        "WanderList App",
		Company:     "CNM",
		Date:        "Sep 2025 to Dec 2025",
		Description: "Bucket list app for travelers interested in adventure trips. Users build a profile, add places they want to visit, mark the ones they have seen and share their experiences.",
		Technology:  "React Router, Node.js, Express.js, PostgreSQL",
	},
	{
		Name:        "OPTI Green - Hackathon",
		Company:     "NM Tech Talks",
		Date:        "Nov 8, 9 2025",
		Description: "A dashboard that analyzes and optimizes LLM token usage to reduce API costs and compute energy consumption.",
		Technology:  "React Router, Node.js, LLM studio, Python, Typescript",
	},
	{
		Name:        "Personal Website",
		Company:     "CNM",
		Date:        "Sep 2025 to Nov 2025",
		Description: "This site: skills, portfolio, technical blog and video blog in one fast, responsive place.",
		Technology:  "Go, Gin, HTMX, Tailwind CSS",
	},
	{
		Name:        "Aurora Sandbox",
		Company:     "ING Belgium",
		Date:        "Jan 2022 to Apr 2023",
		Description: "Sandbox environments used to trial new apps and technologies before they reach customers. Designed and implemented the frontend.",
		Technology:  "Lit, ING Custom Framework, Node.js, Express.js, ING Cloud",
	},
	{
		Name:        "CRM Portal",
		Company:     "ING Belgium",
		Date:        "Feb 2019 to Jan 2022",
		Description: "Single view application with complete information for commercial customers. Enhancements, production support and change requests.",
		Technology:  "Java, Spring, ING custom Framework, PL/SQL",
	},
	{
		Name:        "Claim View App",
		Company:     "Anthem Inc.",
		Date:        "Apr 2018 to Feb 2019",
		Description: "Responsive claim tracking tool for dental, institutional and professional claims with SiteMinder access and PDF download.",
		Technology:  "Angular, Node JS, Express JS, SQL",
	},
	{
		Name:        "Maritz Motivation Solutions App",
		Company:     "Maritz Inc.",
		Date:        "Feb 2014 to Mar 2017",
		Description: "Tools for employee recognition, sales incentive and consumer loyalty programs.",
		Technology:  "Java, Maritz Framework, PL/SQL",
	},
	{
		Name:        "Credit Platform",
		Company:     "CITI Bank",
		Date:        "Mar 2013 to Feb 2014",
		Description: "Centralized loan and credit management: approval documents, collateral monitoring and MIS reporting.",
		Technology:  "Java, Spring, Hibernate",
	},
	{
		Name:        "Universal Rate Server",
		Company:     "CITI Bank",
		Date:        "Nov 2010 to Mar 2013",
		Description: "Centralized server providing on-line foreign exchange rates to every country supported by Regional Treasury.",
		Technology:  "Java, Struts, Websphere, Oracle PL/SQL",
	},
}

var Timeline = []TimelineEntry{
	{
		Title:    "Deep Dive (Full Stack Web Development)",
		Subtitle: "Central New Mexico Community College, USA | Nov - Dec 2025",
		Points: []string{
			"PWP (Personal Web Portfolio): designed and built a responsive portfolio.",
			"WanderList App: bucket list platform for travelers built with React, Tailwind CSS, Express JS, PostgreSQL.",
			"Hackathon Winner: built an AI optimization platform with React Router, Tailwind CSS, LLM Studio.",
		},
	},
	{
		Title:    "Lead Full Stack Developer",
		Subtitle: "Cognizant Technology Solutions | 2014 – 2023",
		Points: []string{
			"Led a team building scalable microservices using Java, Spring, Hibernate, Angular, and Cloud.",
			"Delivered solutions for ING Belgium, Anthem Inc., and Maritz Inc.",
			"Implemented CI/CD pipelines with Jenkins, Docker, and ING Cloud reducing release time by 40%.",
			"Mentored developers and maintained code quality via SonarQube and Git workflows.",
			"Worked on-site in Belgium with ING teams for 2 years, following agile best practices.",
		},
	},
	{
		Title:    "Software Developer",
		Subtitle: "Polaris Financial Technology, India | 2010 – 2014",
		Points: []string{
			"Developed and maintained core banking apps for CITI Bank using Java, JSP, and Spring.",
			"Improved backend performance by 25% through optimized SQL queries and data modeling.",
			"Collaborated closely with teams on requirements and design.",
		},
	},
	{
		Title:    "Bachelor of Technology (IT)",
		Subtitle: "Sridevi Women’s Engineering College, JNTU University, India | 2009",
		Points:   []string{"Specialized in Information Technology."},
	},
	{
		Title:    "Diploma (EIE)",
		Subtitle: "SBTET, Hyderabad, India | 2006",
		Points:   []string{"Specialized in Electronics and Instrumentation Engineering."},
	},
}

var SkillGroups = []SkillGroup{
	{
		Region:     "backend",
		Label:      "Backend Technologies",
		Percentage: 90,
		Skills: []Skill{
			{"Java", "/post/java"},
			{"Spring", "/post/spring-boot"},
			{"Hibernate", "/post/hibernate"},
			{"REST", "/post/rest"},
			{"Microservices", "/post/microservices"},
		},
	},
	{
		Region:     "frontend",
		Label:      "Frontend Technologies",
		Percentage: 80,
		Skills: []Skill{
			{"CSS", "/post/flowbite"},
			{"Angular", "/post/angular"},
			{"React", "/post/react-intro"},
			{"Express JS", "/post/intro-to-express"},
			{"JavaScript", "/post/javascript"},
		},
	},
	{
		Region:     "database",
		Label:      "Database Technologies",
		Percentage: 70,
		Skills: []Skill{
			{"MySQL", "/post/sql"},
			{"PostgreSQL", "/post/ddl"},
		},
	},
	{
		Region:     "deployment",
		Label:      "Deployment Technologies",
		Percentage: 70,
		Skills: []Skill{
			{"Docker", "/post/docker"},
			{"Docker Compose", "/post/compose"},
			{"Git", "/post/git-branching"},
		},
	},
}

var SoftSkills = []SoftSkill{
	{"Motivational Leader", "fa-solid fa-people-group", "Inspire and guide teams to stay focused, motivated, and achieve shared goals."},
	{"Communication", "fa-solid fa-comments", "Clearly convey complex technical concepts to diverse audiences."},
	{"Thinker", "fa-solid fa-brain", "Approach challenges with logical reasoning and creative problem-solving."},
	{"Planner", "fa-solid fa-calendar-check", "Strategically organize tasks, priorities, and milestones for efficient project delivery."},
	{"Problem Solving", "fa-solid fa-lightbulb", "Analyze issues methodically and design effective, long-term solutions."},
	{"Team Collaboration", "fa-solid fa-people-arrows", "Work seamlessly with cross-functional teams to deliver cohesive, high-quality outcomes."},
	{"Adaptability", "fa-solid fa-arrows-rotate", "Quickly adjust to changing requirements, tools, and environments with a positive mindset."},
	{"Time Management", "fa-solid fa-clock", "Balance multiple priorities and deliver consistent results under tight deadlines."},
	{"Mentorship", "fa-solid fa-chalkboard-user", "Support and coach junior developers to grow their technical and professional skills."},
	{"Cultural Awareness", "fa-solid fa-globe", "Collaborate effectively with international teams by understanding diverse perspectives."},
	{"Attention to Detail", "fa-solid fa-magnifying-glass", "Ensure precision in code, design, and documentation to maintain quality and reliability."},
	{"Strategic Planning", "fa-solid fa-chess-queen", "Anticipate future challenges and align development goals with long-term business strategy."},
}

var Slides = []Slide{
	{"/static/scroll/ballon-fiesta.svg", "Ballon Fiesta"},
	{"/static/scroll/Colorado.svg", "Colorado Mountains"},
	{"/static/scroll/granby.svg", "Granby"},
	{"/static/scroll/arches.svg", "Arches National Park"},
	{"/static/scroll/sanddunes.svg", "Sand Dunes National Park"},
	{"/static/scroll/santafe.svg", "Santa Fe National Park"},
}

var Videos = []Video{
	{"Las Vegas", "https://www.youtube.com/embed/WuM0HxIapGg"},
	{"South Fork", "https://www.youtube.com/embed/VGTl1Sdvq8k"},
	{"Arches", "https://www.youtube.com/embed/UMkBuQt9444"},
	{"Blue Hole", "https://www.youtube.com/embed/C6wjwrlwVq0"},
	{"White Sands", "https://www.youtube.com/embed/wASJQcKdN2Q"},
	{"Colorado", "https://www.youtube.com/embed/z_tOOqHZVY8"},
	{"Granby", "https://www.youtube.com/embed/q_yn8AJr_Ps"},
	{"Fourth of July Trail", "https://www.youtube.com/embed/_s-WlQd8tsE"},
	{"Sandia Crest", "https://www.youtube.com/embed/fl19UXC-ZEE"},
	{"Balloon Fiesta", "https://www.youtube.com/embed/rijoWm082FQ"},
	{"Great Sand Dunes", "https://www.youtube.com/embed/EyYWTxxepmI"},
	{"Jemez Hot Springs", "https://www.youtube.com/embed/WjJCTPQTXtE"},
}
