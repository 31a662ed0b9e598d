package jobs

import "strings"

const maxSuggestions = 8

var jobTitles = []string{
	"Software Engineer", "Software Developer", "Senior Software Engineer",
	"Full Stack Developer", "Full Stack Engineer", "Frontend Developer", "Frontend Engineer",
	"Backend Developer", "Backend Engineer", "React Developer", "React Native Developer",
	"Angular Developer", "Vue.js Developer", "Node.js Developer", "Python Developer",
	"Java Developer", "JavaScript Developer", "TypeScript Developer", "PHP Developer",
	"Ruby on Rails Developer", "Go Developer", "Rust Developer", "iOS Developer",
	"Android Developer", "Mobile App Developer", "DevOps Engineer", "Cloud Engineer",
	"AWS Solutions Architect", "Azure Developer", "Data Engineer", "Data Scientist",
	"Data Analyst", "Machine Learning Engineer", "AI Engineer", "ML Engineer",
	"QA Engineer", "Test Engineer", "Automation Engineer", "Site Reliability Engineer",
	"SRE", "Platform Engineer", "Security Engineer", "Cybersecurity Analyst",
	"Network Engineer", "System Administrator", "Database Administrator", "DBA",
	"Technical Lead", "Tech Lead", "Engineering Manager", "Product Manager",
	"Project Manager", "Scrum Master", "UI/UX Designer", "UX Designer", "UI Designer",
	"Product Designer", "Graphic Designer", "Web Developer", "WordPress Developer",
	"Shopify Developer", "Salesforce Developer", "SAP Developer", "Blockchain Developer",
	"Web3 Developer", "Game Developer", "Embedded Systems Engineer", "Firmware Engineer",
	"IT Support Specialist", "Technical Support Engineer", "Solutions Engineer",
	"Sales Engineer", "Business Analyst", "Systems Analyst",
}

var locations = []string{
	// India
	"Bengaluru, India", "Bangalore, India", "Mumbai, India", "Delhi, India", "New Delhi, India",
	"Hyderabad, India", "Chennai, India", "Pune, India", "Kolkata, India", "Ahmedabad, India",
	"Gurgaon, India", "Noida, India", "Jaipur, India", "Chandigarh, India", "Kochi, India",
	"Coimbatore, India", "Indore, India", "Thiruvananthapuram, India",
	// USA
	"San Francisco, CA", "San Jose, CA", "Los Angeles, CA", "San Diego, CA", "Seattle, WA",
	"New York, NY", "Austin, TX", "Dallas, TX", "Houston, TX", "Chicago, IL", "Boston, MA",
	"Denver, CO", "Atlanta, GA", "Miami, FL", "Washington, DC", "Phoenix, AZ", "Portland, OR",
	"Raleigh, NC", "Charlotte, NC", "Minneapolis, MN", "Detroit, MI", "Philadelphia, PA",
	// UK
	"London, UK", "Manchester, UK", "Birmingham, UK", "Edinburgh, UK", "Bristol, UK",
	"Cambridge, UK", "Oxford, UK",
	// Europe
	"Berlin, Germany", "Munich, Germany", "Amsterdam, Netherlands", "Dublin, Ireland",
	"Paris, France", "Barcelona, Spain", "Stockholm, Sweden", "Zurich, Switzerland",
	// Canada
	"Toronto, Canada", "Vancouver, Canada", "Montreal, Canada", "Ottawa, Canada", "Calgary, Canada",
	// Australia
	"Sydney, Australia", "Melbourne, Australia", "Brisbane, Australia", "Perth, Australia",
	"Singapore",
	"Remote", "Work from Home", "Hybrid",
}

// JobSuggestions autocompletes job titles.
func JobSuggestions(q string) []string { return filterContains(jobTitles, q) }

// LocationSuggestions autocompletes locations.
func LocationSuggestions(q string) []string { return filterContains(locations, q) }

func filterContains(values []string, q string) []string {
	q = strings.ToLower(q)
	out := []string{}
	for _, v := range values {
		if strings.Contains(strings.ToLower(v), q) {
			out = append(out, v)
			if len(out) == maxSuggestions {
				break
			}
		}
	}
	return out
}
