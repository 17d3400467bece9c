package generation

import "fmt"

var topics = [...]string{
	"the main concept",
	"the key theory",
	"the primary research method",
	"the historical development",
	"the practical application",
	"the critical analysis",
	"the statistical significance",
	"the case study",
	"the experimental design",
	"the ethical considerations",
}

var optionSets = [...][4]string{
	{"Theory A", "Theory B", "Theory C", "Theory D"},
	{"Historical perspective", "Modern interpretation", "Critical analysis", "Practical application"},
	{"Quantitative approach", "Qualitative methodology", "Mixed methods", "Experimental design"},
	{"Primary source", "Secondary analysis", "Literature review", "Meta-analysis"},
	{"Economic factors", "Social implications", "Political context", "Cultural significance"},
}

var mainPoints = [...]string{
	"Key concept 1 from the uploaded document",
	"Important definition mentioned in the content",
	"Critical theory explained in section 2",
	"Statistical findings from the research",
	"Conclusion points from the final paragraph",
}

const detailedSummaryTemplate = "This document covers important concepts related to %s... " +
	"The main argument focuses on several key areas including theoretical frameworks, " +
	"practical applications, and future implications. The author presents evidence from " +
	"multiple sources to support their claims and provides a comprehensive analysis of " +
	"the subject matter. Various examples are used to illustrate complex ideas and make " +
	"them more accessible to readers. The conclusion synthesizes these points and offers " +
	"suggestions for further research and practical implementation."

const (
	explanationPrefix = "I'd be happy to explain! "
	helpPrefix        = "Here's how you can do that: "
	comparisonPrefix  = "Let me compare those for you: "
)

const explanationBody = "This concept refers to a fundamental principle in the field. " +
	"It was first developed in the early studies and has since evolved to encompass " +
	"various aspects of the subject matter. The core idea involves understanding how " +
	"different elements interact and influence outcomes in specific contexts. " +
	"Many researchers have contributed to developing this concept further, adding " +
	"nuance and practical applications across different scenarios."

const helpBody = "First, identify the main components involved in the process. " +
	"Then, analyze how these components interact with each other based on " +
	"established principles. Apply the relevant formulas or frameworks to " +
	"solve the specific problem. Make sure to validate your approach by " +
	"checking if the outcome aligns with expected results. If you encounter " +
	"difficulties, try breaking down the problem into smaller, manageable parts " +
	"and solve them step by step."

const comparisonBody = "The first concept focuses on theoretical frameworks and abstract principles, " +
	"while the second emphasizes practical applications and real-world implementations. " +
	"They differ in their historical development - one emerged from classical studies " +
	"while the other resulted from modern research methodologies. Their applications " +
	"also vary across different fields, with distinct strengths and limitations in " +
	"various contexts. However, they share some common foundations and can be " +
	"complementary when used together in comprehensive approaches."

const genericTemplate = "That's an interesting question about %s... " +
	"Based on the educational materials I've analyzed, I can tell you that this topic " +
	"involves several important concepts. Would you like me to explain specific aspects " +
	"of this topic in more detail?"

// Topic returns the topic phrase for the question at position i.
func Topic(i int) string {
	if i < 0 {
		i = -i
	}
	return topics[i%len(topics)]
}

// Prompt renders the question text for a kind and topic. Unknown kinds get a
// generic prompt.
func Prompt(kind Kind, topic string) string {
	switch kind {
	case KindMultipleChoice:
		return fmt.Sprintf("What is %s discussed in the document?", topic)
	case KindShortAnswer:
		return fmt.Sprintf("Briefly explain %s as presented in the material.", topic)
	case KindEssay:
		return fmt.Sprintf("Analyze and discuss %s in detail, providing examples from the content.", topic)
	default:
		return fmt.Sprintf("Describe %s from the uploaded content.", topic)
	}
}

// OptionSet returns a copy of option set i.
func OptionSet(i int) []string {
	set := optionSets[i%len(optionSets)]
	return append([]string(nil), set[:]...)
}

func OptionSetCount() int {
	return len(optionSets)
}

// MainPoints returns a copy of the fixed summary bullet list.
func MainPoints() []string {
	return append([]string(nil), mainPoints[:]...)
}
