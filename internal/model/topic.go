package model

// Topic is a static catalog entry. The catalog is compiled in; it is not
// persisted and never varies per user.
type Topic struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Color         string   `json:"color"`
	QuestionCount int      `json:"questionCount"`
	Difficulty    string   `json:"difficulty"`
	Keywords      []string `json:"keywords"`
}

var topics = []Topic{
	{
		ID:            "java",
		Title:         "Java Programming",
		Description:   "Core Java concepts, OOP principles, and advanced topics",
		Color:         "bg-gradient-to-br from-orange-500 to-red-600",
		QuestionCount: 15,
		Difficulty:    "Intermediate",
		Keywords:      []string{"OOP", "Collections", "Multithreading", "JVM", "Exception Handling"},
	},
	{
		ID:            "hr",
		Title:         "HR & Behavioral",
		Description:   "Behavioral questions, situational scenarios, and soft skills",
		Color:         "bg-gradient-to-br from-green-500 to-emerald-600",
		QuestionCount: 20,
		Difficulty:    "Mixed",
		Keywords:      []string{"Leadership", "Teamwork", "Communication", "Problem Solving", "Adaptability"},
	},
	{
		ID:            "dsa",
		Title:         "Data Structures & Algorithms",
		Description:   "Arrays, trees, graphs, sorting, searching, and complexity analysis",
		Color:         "bg-gradient-to-br from-blue-500 to-cyan-600",
		QuestionCount: 25,
		Difficulty:    "Advanced",
		Keywords:      []string{"Arrays", "Trees", "Graphs", "Sorting", "Dynamic Programming"},
	},
	{
		ID:            "communication",
		Title:         "Communication Skills",
		Description:   "Presentation skills, public speaking, and professional communication",
		Color:         "bg-gradient-to-br from-purple-500 to-pink-600",
		QuestionCount: 12,
		Difficulty:    "Beginner",
		Keywords:      []string{"Presentation", "Public Speaking", "Active Listening", "Feedback"},
	},
	{
		ID:            "database",
		Title:         "Database Management",
		Description:   "SQL queries, database design, normalization, and DBMS concepts",
		Color:         "bg-gradient-to-br from-indigo-500 to-purple-600",
		QuestionCount: 18,
		Difficulty:    "Intermediate",
		Keywords:      []string{"SQL", "Normalization", "Indexing", "Transactions", "Performance"},
	},
	{
		ID:            "system-design",
		Title:         "System Design",
		Description:   "Scalability, architecture patterns, and distributed systems",
		Color:         "bg-gradient-to-br from-teal-500 to-blue-600",
		QuestionCount: 10,
		Difficulty:    "Advanced",
		Keywords:      []string{"Scalability", "Load Balancing", "Microservices", "Caching", "Databases"},
	},
}

// topicGuidelines steer question generation per topic title.
var topicGuidelines = map[string]string{
	"Java Programming": `
    - Object-oriented programming concepts (inheritance, polymorphism, encapsulation)
    - Core Java features (collections, exception handling, multithreading)
    - JVM concepts and memory management
    - Design patterns and best practices
    `,
	"HR & Behavioral": `
    - Behavioral scenarios and STAR method responses
    - Leadership and teamwork experiences
    - Problem-solving and conflict resolution
    - Career goals and motivation
    `,
	"Data Structures & Algorithms": `
    - Array and string manipulation problems
    - Tree and graph traversal algorithms
    - Sorting and searching techniques
    - Time and space complexity analysis
    `,
	"Communication Skills": `
    - Presentation and public speaking scenarios
    - Professional communication situations
    - Active listening and feedback
    - Cross-cultural communication
    `,
	"Database Management": `
    - SQL query writing and optimization
    - Database design and normalization
    - ACID properties and transactions
    - Indexing and performance tuning
    `,
	"System Design": `
    - Scalability and load balancing
    - Database design for large systems
    - Caching strategies and CDNs
    - Microservices architecture
    `,
}

// AllTopics returns the full catalog.
func AllTopics() []Topic {
	return topics
}

// TopicByID looks up a catalog entry by its short code.
func TopicByID(id string) (Topic, bool) {
	for _, t := range topics {
		if t.ID == id {
			return t, true
		}
	}
	return Topic{}, false
}

// IsValidTopicID reports whether the short code exists in the catalog.
func IsValidTopicID(id string) bool {
	_, ok := TopicByID(id)
	return ok
}

// GuidelinesFor returns the question-generation hints for a topic title,
// falling back to a generic instruction for unrecognized topics.
func GuidelinesFor(topicTitle string) string {
	if g, ok := topicGuidelines[topicTitle]; ok {
		return g
	}
	return "Focus on practical knowledge and real-world applications."
}
