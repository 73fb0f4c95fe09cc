package profile

// Fixed vocabularies offered by the setup wizard. Free-text values are
// still accepted at the storage boundary; these drive selection UIs and
// the rule-based suggestion engine.

var PersonalityTypes = []string{
	"ENTJ", "ENFJ", "ENTP", "ENFP", "ESTJ", "ESFJ", "ESTP", "ESFP",
	"INTJ", "INFJ", "INTP", "INFP", "ISTJ", "ISFJ", "ISTP", "ISFP",
}

var EnergyStyles = []string{"Extrovert", "Introvert", "Ambivert"}

var GivingStyles = []string{
	"Mentor", "Connector", "Resource Provider", "Emotional Support", "Strategic Advisor",
}

var CommunicationStyles = []string{"Direct", "Supportive", "Analytical", "Expressive"}

var Strengths = []string{
	"Leadership", "Strategic Thinking", "Networking", "Problem Solving", "Creativity",
	"Empathy", "Communication", "Business Development", "Coaching", "Innovation",
}

var BusinessAreas = []string{
	"Real Estate", "Coaching", "Tourism", "App Development", "Investment",
	"Marketing", "Sales", "Operations", "Strategy", "Leadership Development",
}

var Interests = []string{
	"Business", "Technology", "Travel", "Fitness", "Reading", "Networking",
	"Entrepreneurship", "Investing", "Coaching", "Innovation",
}

var GivingMethods = []string{
	"Strategic Advice", "Business Connections", "Resource Sharing", "Mentoring",
	"Investment Opportunities", "Partnership Introductions", "Skill Development",
	"Emotional Support", "Problem Solving", "Opportunity Creation",
}

var InteractionTypes = []string{
	"Phone Calls", "Video Calls", "Text Messages", "In-Person Meetings",
	"Business Dinners", "Coffee Chats", "Event Invitations", "Email",
}

var FocusAreas = []string{
	"Relationship Depth", "Energy Optimization", "Goal Support",
	"Network Expansion", "Business Connections", "Personal Growth",
}
