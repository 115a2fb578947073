package employee

// AllSkills is the canonical skill vocabulary the generator samples from.
var AllSkills = []string{
	"Python", "Java", "JavaScript", "React", "Angular", "Vue.js", "Node.js",
	"AWS", "Azure", "GCP", "Docker", "Kubernetes", "SQL", "NoSQL",
	"Machine Learning", "Deep Learning", "NLP", "Data Science", "Tableau",
	"Power BI", "DevOps", "CI/CD", "Terraform", "Ansible", "C#", ".NET",
	"Unity", "iOS Development", "Android Development", "React Native",
	"Flutter", "PHP", "Ruby on Rails", "Go", "TypeScript", "Kafka",
	"Spark", "Hadoop", "Scrum", "Agile", "Microservices", "REST APIs",
	"GraphQL", "Cybersecurity", "Blockchain", "AR/VR",
}

// AllPastProjects is the canonical project vocabulary.
var AllPastProjects = []string{
	"E-commerce Platform", "Healthcare Management System", "Fintech Application",
	"Social Media Analytics", "AI-powered Chatbot", "Supply Chain Optimization",
	"Cloud Migration Project", "Mobile Game Development", "CRM System",
	"Data Warehousing Solution", "IoT Dashboard", "Educational Platform",
	"Cybersecurity Audit", "Blockchain Voting System", "Augmented Reality App",
	"Natural Language Processing Engine", "Predictive Maintenance System",
	"Real-time Data Processing", "Customer Loyalty Program", "Fraud Detection System",
}

// AvailabilityOptions lists the valid availability statuses.
var AvailabilityOptions = []string{
	AvailabilityAvailable,
	AvailabilityPartiallyAvailable,
	AvailabilityFullyBooked,
}
