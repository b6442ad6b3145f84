package content

// Section IDs of the default page, in display order.
const (
	SectionHero       = "hero"
	SectionAbout      = "about"
	SectionSkills     = "skills"
	SectionExperience = "experience"
	SectionProjects   = "projects"
	SectionEducation  = "education"
	SectionContact    = "contact"
)

// DefaultSections is the navigation list of the page.
func DefaultSections() []Section {
	return []Section{
		{ID: SectionHero, Name: "Home"},
		{ID: SectionAbout, Name: "About"},
		{ID: SectionSkills, Name: "Skills"},
		{ID: SectionExperience, Name: "Experience"},
		{ID: SectionProjects, Name: "Projects"},
		{ID: SectionEducation, Name: "Education"},
		{ID: SectionContact, Name: "Contact"},
	}
}

// Default returns the built-in portfolio. Each call returns a fresh copy.
func Default() *Portfolio {
	return &Portfolio{
		Profile: Profile{
			Name:      "Muskan Sharma",
			Initials:  "MS",
			Role:      "Data Analyst",
			Tagline:   "Passionate about transforming data into impactful insights",
			Email:     "muskaaan.3281@gmail.com",
			LinkedIn:  "https://www.linkedin.com/in/ims2223",
			Location:  "NIT Faridabad, Haryana, India",
			Languages: []string{"Hindi (Native)", "English (Fluent)"},
			About: []string{
				"As a recent graduate with specialized training in Data Analytics, I am eager to leverage my skill set in data visualization and problem-solving.",
				"Seeking a challenging position where I can extract meaningful insights from data to support informed business decisions.",
			},
		},
		Sections: DefaultSections(),
		Skills: []Category{
			NewCategory("Data Analysis",
				"Data Visualization", "Data Cleaning", "Statistical Analysis", "Business Intelligence"),
			NewCategory("Tools & Technologies",
				"Power BI (DAX, Power Query)", "Tableau", "Excel (Pivot Tables, VLOOKUP)", "SQL",
				"Python (Pandas, NumPy, Matplotlib)", "ETL"),
			NewCategory("Soft Skills",
				"Problem-solving", "Attention to Detail", "Adaptability", "Quick Learner",
				"Communication", "Critical Thinking"),
		},
		Experience: []Experience{
			{
				Title:   "Data Analyst Intern",
				Company: "Hankernest",
				Period:  "March 4, 2024 - August 14, 2024",
				Highlights: []string{
					"Supported data analysis projects",
					"Worked on data cleaning, reporting, and visualization tasks",
					"Provided actionable insights for internal reports",
				},
			},
		},
		Projects: []Project{
			{
				Title:       "Excel: Zomato Data Analysis",
				Description: "Comprehensive analysis of Zomato restaurant data including data cleaning, transformation, and insight generation using advanced Excel functions.",
				Tools:       []string{"Excel", "Pivot Tables", "VLOOKUP", "Data Validation"},
				Icon:        "▥",
				Details: &ProjectDetails{
					Duration: "2 weeks",
					Challenges: []string{
						"Handling large datasets with inconsistent formatting",
						"Creating dynamic pivot tables for multiple analysis views",
						"Implementing complex VLOOKUP formulas for data matching",
					},
					Outcomes: []string{
						"Identified top-performing restaurant categories",
						"Discovered pricing patterns across different locations",
						"Created automated reporting dashboard",
					},
				},
			},
			{
				Title:       "Power BI: Amazon Mobile Dataset",
				Description: "Interactive dashboard analyzing Amazon mobile sales data with DAX formulas and Power Query transformations.",
				Tools:       []string{"Power BI", "DAX", "Power Query", "Data Modeling"},
				Icon:        "◧",
				Details: &ProjectDetails{
					Duration: "3 weeks",
					Challenges: []string{
						"Complex data modeling with multiple related tables",
						"Creating advanced DAX measures for time intelligence",
						"Optimizing dashboard performance for large datasets",
					},
					Outcomes: []string{
						"Built interactive sales performance dashboard",
						"Implemented real-time data refresh capabilities",
						"Reduced reporting time by 75%",
					},
				},
			},
			{
				Title:       "Power BI: Global Terrorism Analysis",
				Description: "Comprehensive dashboard examining global terrorism trends and patterns with geographic visualizations.",
				Tools:       []string{"Power BI", "DAX", "Geographic Mapping", "Time Series Analysis"},
				Icon:        "↗",
				Details: &ProjectDetails{
					Duration: "4 weeks",
					Challenges: []string{
						"Processing sensitive geopolitical data",
						"Creating meaningful geographic visualizations",
						"Implementing time-based trend analysis",
					},
					Outcomes: []string{
						"Identified global terrorism hotspots and trends",
						"Created predictive models for risk assessment",
						"Delivered insights to security research team",
					},
				},
			},
			{
				Title:       "Tableau: COVID Data Dashboard",
				Description: "Interactive COVID-19 data dashboard featuring real-time statistics, trend analysis, and geographic distribution.",
				Tools:       []string{"Tableau", "Data Visualization", "Dashboard Design", "Statistical Analysis"},
				Icon:        "▥",
				Details: &ProjectDetails{
					Duration: "2 weeks",
					Challenges: []string{
						"Handling rapidly changing data sources",
						"Creating responsive visualizations for different devices",
						"Implementing real-time data updates",
					},
					Outcomes: []string{
						"Tracked pandemic trends across multiple regions",
						"Provided actionable insights for public health decisions",
						"Dashboard viewed by 10,000+ users",
					},
				},
			},
		},
		Education: []Education{
			{Degree: "B.Sc. in Neurophysiology Technology", Institution: "SGT University", Period: "2019 - 2022"},
			{Degree: "12th - ISC Board", Institution: "Jiva Public School", Period: "2019"},
			{Degree: "10th - ICSE Board", Institution: "Jiva Public School", Period: "2017"},
		},
		Certifications: []Certification{
			{
				Name:   "Data Science Bootcamp",
				Issuer: "GeeksforGeeks",
				Detail: "From analyzing data to creating ML models",
			},
			{
				Name:   "Data Analytics Training",
				Issuer: "Madrid Software Trainings",
				Period: "July 2023 - February 2024",
				Detail: "Trained in SQL, Python, Tableau, Power BI, and advanced Excel",
			},
		},
	}
}
