package jobs

const demoApplyLink = "https://example.com/apply"

// DemoJobs returns the fixed listings served when JSearch is unavailable.
func DemoJobs() []Job {
	return []Job{
		{
			ID: "mock-1", Title: "Senior Frontend Developer", Company: "TechCorp Inc.",
			Location: "San Francisco, CA", Type: "Full-time", Salary: "$120k - $160k", Posted: "2 days ago",
			Description:      "We are looking for an experienced frontend developer to join our team...",
			Highlights:       []string{"5+ years of experience", "Strong React skills", "Team leadership"},
			Responsibilities: []string{"Build user interfaces", "Code reviews", "Mentor juniors"},
			ApplyLink:        demoApplyLink,
			Skills:           []string{"React", "TypeScript", "Node.js", "CSS", "Git"},
			Publisher:        "Company Website", MatchScore: 95,
		},
		{
			ID: "mock-2", Title: "Full Stack Engineer", Company: "StartupXYZ",
			Location: "Remote", IsRemote: true, Type: "Full-time", Salary: "$100k - $140k", Posted: "1 week ago",
			Description:      "Join our fast-growing startup as a full stack engineer...",
			Highlights:       []string{"3+ years experience", "Startup mindset", "Problem solver"},
			Responsibilities: []string{"Full stack development", "API design", "Database management"},
			ApplyLink:        demoApplyLink,
			Skills:           []string{"JavaScript", "Python", "AWS", "PostgreSQL", "Docker"},
			Publisher:        "LinkedIn", MatchScore: 88,
		},
		{
			ID: "mock-3", Title: "React Developer", Company: "Digital Agency Co.",
			Location: "New York, NY", Type: "Contract", Salary: "$80k - $110k", Posted: "3 days ago",
			Description:      "Looking for a React developer for client projects...",
			Highlights:       []string{"React expertise", "Agency experience preferred", "Creative mindset"},
			Responsibilities: []string{"Build web applications", "Client communication", "Agile development"},
			ApplyLink:        demoApplyLink,
			Skills:           []string{"React", "CSS", "Redux", "JavaScript", "Figma"},
			Publisher:        "Indeed", MatchScore: 82,
		},
		{
			ID: "mock-4", Title: "Software Engineer", Company: "Enterprise Solutions",
			Location: "Austin, TX", Type: "Full-time", Salary: "$90k - $130k", Posted: "5 days ago",
			Description:      "Enterprise software development position...",
			Highlights:       []string{"Java/Spring experience", "Enterprise background", "Team player"},
			Responsibilities: []string{"Backend development", "System design", "Code optimization"},
			ApplyLink:        demoApplyLink,
			Skills:           []string{"Java", "Spring Boot", "React", "MySQL", "AWS"},
			Publisher:        "Glassdoor", MatchScore: 78,
		},
		{
			ID: "mock-5", Title: "Backend Developer", Company: "FinTech Innovations",
			Location: "Remote", IsRemote: true, Type: "Full-time", Salary: "$110k - $150k", Posted: "1 day ago",
			Description:      "Build scalable backend systems for our fintech platform...",
			Highlights:       []string{"Strong backend skills", "FinTech experience a plus", "Security focused"},
			Responsibilities: []string{"API development", "Database design", "Performance optimization"},
			ApplyLink:        demoApplyLink,
			Skills:           []string{"Node.js", "Python", "PostgreSQL", "Redis", "Docker"},
			Publisher:        "Company Website", MatchScore: 85,
		},
		{
			ID: "mock-6", Title: "DevOps Engineer", Company: "CloudScale Tech",
			Location: "Seattle, WA", IsRemote: true, Type: "Full-time", Salary: "$130k - $170k", Posted: "4 days ago",
			Description:      "Join our DevOps team to build and maintain cloud infrastructure...",
			Highlights:       []string{"AWS/GCP expertise", "Kubernetes experience", "CI/CD pipelines"},
			Responsibilities: []string{"Infrastructure management", "Automation", "Monitoring"},
			ApplyLink:        demoApplyLink,
			Skills:           []string{"AWS", "Kubernetes", "Docker", "Terraform", "Jenkins"},
			Publisher:        "LinkedIn", MatchScore: 72,
		},
		{
			ID: "mock-7", Title: "Mobile App Developer", Company: "AppWorks Studio",
			Location: "Los Angeles, CA", Type: "Full-time", Salary: "$95k - $135k", Posted: "1 week ago",
			Description:      "Create beautiful mobile applications for iOS and Android...",
			Highlights:       []string{"React Native or Flutter", "Published apps", "UI/UX sense"},
			Responsibilities: []string{"Mobile development", "App optimization", "Feature implementation"},
			ApplyLink:        demoApplyLink,
			Skills:           []string{"React Native", "Flutter", "JavaScript", "iOS", "Android"},
			Publisher:        "Indeed", MatchScore: 68,
		},
		{
			ID: "mock-8", Title: "Data Engineer", Company: "DataDriven Inc.",
			Location: "Remote", IsRemote: true, Type: "Full-time", Salary: "$115k - $155k", Posted: "6 days ago",
			Description:      "Build and maintain data pipelines for analytics...",
			Highlights:       []string{"Big data experience", "Python/SQL skills", "ETL expertise"},
			Responsibilities: []string{"Data pipeline development", "ETL processes", "Data modeling"},
			ApplyLink:        demoApplyLink,
			Skills:           []string{"Python", "SQL", "Spark", "AWS", "Airflow"},
			Publisher:        "Glassdoor", MatchScore: 65,
		},
	}
}
