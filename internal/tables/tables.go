package tables

// Tables holds the static reference data consumed by the fact extractor and
// the component scorers: institution tiers, specialty programs, elite company
// sets, the skill vocabulary, and the keyword detectors. A Tables value is
// built once at startup and shared read-only across evaluations.
type Tables struct {
	tier1Schools      []schoolGroup
	tier2Schools      []schoolGroup
	specialtyPrograms []schoolGroup
	eliteCompanies    []companyGroup
	skillVocabulary   []string
}

type schoolGroup struct {
	category string
	schools  []string
}

type companyGroup struct {
	category  string
	companies []string
}

// Default builds the standard reference tables. Group order is significant:
// lookups stop at the first containing entry, so higher-priority categories
// come first.
func Default() *Tables {
	return &Tables{
		tier1Schools: []schoolGroup{
			{category: "US_TOP15", schools: []string{
				"MIT", "Massachusetts Institute", "Stanford", "Harvard", "Berkeley", "CMU",
				"Caltech", "Princeton", "Yale", "Columbia", "UPenn", "Cornell",
				"University of Chicago", "Northwestern", "Johns Hopkins", "Brown",
			}},
			{category: "ENGINEERING_CS_ELITE", schools: []string{
				"University of Waterloo", "Georgia Tech", "UIUC", "UT Austin",
				"UW Seattle", "Purdue", "Virginia Tech",
			}},
			{category: "INTERNATIONAL_ELITE", schools: []string{
				"Oxford", "Cambridge", "ETH Zurich", "University of Toronto",
				"IIT", "Tsinghua", "Peking University", "National University of Singapore",
				"University of Melbourne", "KAIST", "Technion",
			}},
			{category: "BUSINESS_ELITE", schools: []string{
				"Wharton", "Harvard Business", "Stanford GSB", "Kellogg", "Booth", "Sloan",
			}},
			{category: "MEDICAL_ELITE", schools: []string{
				"Harvard Medical", "Johns Hopkins", "UCSF", "Mayo Clinic",
				"Stanford Medical", "Penn Medical",
			}},
			{category: "LAW_ELITE", schools: []string{
				"Harvard Law", "Yale Law", "Stanford Law", "Columbia Law",
				"NYU Law", "Chicago Law",
			}},
		},
		tier2Schools: []schoolGroup{
			{category: "STRONG_UNIVERSITIES", schools: []string{
				"UCLA", "UCSD", "USC", "Michigan", "Wisconsin", "Washington",
				"North Carolina", "Virginia", "NYU", "Boston University",
				"Rice", "Vanderbilt", "Emory", "Georgetown", "Notre Dame",
				"Duke", "Dartmouth", "William & Mary", "Boston College",
			}},
			{category: "ENGINEERING_STRONG", schools: []string{
				"Texas A&M", "Penn State", "Ohio State", "Arizona State",
				"UC Irvine", "UC Davis", "Rutgers", "Maryland",
				"UC Santa Barbara", "UC Santa Cruz", "Northeastern",
				"RIT", "WPI", "RPI", "Stevens Tech", "Colorado School of Mines",
			}},
			{category: "INTERNATIONAL_STRONG", schools: []string{
				"McGill", "UBC", "Queen's", "London School of Economics",
				"Imperial College", "University of Sydney", "ANU",
				"University of Hong Kong", "HKUST", "Sciences Po", "Bocconi",
			}},
		},
		specialtyPrograms: []schoolGroup{
			{category: "CS_LEADERS", schools: []string{
				"MIT", "Stanford", "CMU", "Berkeley", "Waterloo", "UIUC",
				"Georgia Tech", "UT Austin", "UW Seattle",
			}},
			{category: "ENGINEERING_LEADERS", schools: []string{
				"MIT", "Stanford", "Berkeley", "Caltech", "CMU", "Georgia Tech",
				"Purdue", "Michigan", "UIUC",
			}},
			{category: "BUSINESS_MBA_LEADERS", schools: []string{
				"Wharton", "Harvard", "Stanford", "Kellogg", "Booth", "Sloan",
				"Columbia", "Tuck",
			}},
			{category: "MEDICAL_LEADERS", schools: []string{
				"Harvard Medical", "Johns Hopkins", "UCSF", "Mayo Clinic", "Stanford Medical",
			}},
			{category: "LAW_LEADERS", schools: []string{
				"Harvard Law", "Yale Law", "Stanford Law", "Columbia Law",
				"NYU Law", "Chicago Law",
			}},
		},
		eliteCompanies: []companyGroup{
			{category: "TECH_STARTUP_ELITE", companies: []string{
				"Stripe", "Scale AI", "Databricks", "Canva", "Airbnb", "Uber",
				"Palantir", "Snowflake", "MongoDB", "Twilio",
			}},
			{category: "TECH_ENTERPRISE_ELITE", companies: []string{
				"Google", "Meta", "Apple", "Amazon", "Microsoft", "Netflix",
				"Salesforce", "Oracle", "SAP", "Adobe",
			}},
			{category: "BIG4_ACCOUNTING", companies: []string{
				"KPMG", "Deloitte", "EY", "PwC",
			}},
			{category: "ELITE_LAW_FIRMS", companies: []string{
				"Cravath", "Skadden", "Sullivan & Cromwell", "Wachtell",
				"Davis Polk", "Simpson Thacher",
			}},
			{category: "ELITE_HEALTHCARE", companies: []string{
				"Mayo Clinic", "Cleveland Clinic", "Johns Hopkins",
				"Massachusetts General", "UCSF Medical Center",
			}},
		},
		skillVocabulary: []string{
			// Programming languages
			"python", "java", "javascript", "typescript", "go", "rust", "c++",
			"c#", "php", "ruby", "swift", "kotlin", "scala",
			// Web
			"react", "vue", "angular", "node.js", "express", "django", "flask",
			"spring", "laravel", "asp.net",
			// Cloud and DevOps
			"aws", "azure", "gcp", "docker", "kubernetes", "jenkins", "gitlab",
			"github", "terraform", "ansible",
			// Databases
			"sql", "mysql", "postgresql", "mongodb", "redis", "elasticsearch",
			"dynamodb", "cassandra",
			// Data and AI
			"machine learning", "ai", "data science", "tensorflow", "pytorch",
			"scikit-learn", "pandas", "numpy", "spark", "hadoop",
			// Mobile and desktop
			"ios", "android", "react native", "flutter", "xamarin", "electron",
			// Everything else
			"graphql", "rest api", "microservices", "serverless", "blockchain",
			"cybersecurity", "devops", "sre",
		},
	}
}
