package subject

// SeedSubjects returns the sample subjects every session starts with.
func SeedSubjects() []Subject {
	return []Subject{
		{
			ID:              "1",
			Name:            "Machine Learning",
			Progress:        65,
			TotalTopics:     24,
			CompletedTopics: 16,
			MindMap:         []TopicNode{},
		},
		{
			ID:              "2",
			Name:            "Data Structures",
			Progress:        89,
			TotalTopics:     18,
			CompletedTopics: 16,
			MindMap:         []TopicNode{},
		},
	}
}
