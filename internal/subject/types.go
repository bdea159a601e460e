package subject

import "fmt"

// NewSubjectTopicCount is the topic total assigned to a freshly created
// subject. It matches the node count of the placeholder learning path.
const NewSubjectTopicCount = 19

// Subject is a named course of study tracked by the dashboard.
type Subject struct {
	ID              string      `json:"id"`
	Name            string      `json:"name"`
	Progress        int         `json:"progress"`
	TotalTopics     int         `json:"totalTopics"`
	CompletedTopics int         `json:"completedTopics"`
	MindMap         []TopicNode `json:"mindMap,omitempty"`
}

// TopicNode is one entry in a learning path. Roots are categories,
// children are leaf topics.
type TopicNode struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	IsCompleted bool        `json:"isCompleted"`
	Children    []TopicNode `json:"children,omitempty"`
}

// NewSubject builds a freshly created subject. Progress and completion
// start at zero.
func NewSubject(id, name string, mindMap []TopicNode) Subject {
	return Subject{
		ID:              id,
		Name:            name,
		Progress:        0,
		TotalTopics:     NewSubjectTopicCount,
		CompletedTopics: 0,
		MindMap:         mindMap,
	}
}

// IsComplete reports whether the subject shows full progress.
func (s Subject) IsComplete() bool {
	return s.Progress == 100
}

// DetailRoute returns the learning hub route for a subject id.
func DetailRoute(id string) string {
	return fmt.Sprintf("/learning-hub/%s", id)
}

// clone returns a deep copy so callers cannot mutate stored trees.
func (s Subject) clone() Subject {
	s.MindMap = cloneNodes(s.MindMap)
	return s
}

func cloneNodes(nodes []TopicNode) []TopicNode {
	if nodes == nil {
		return nil
	}
	out := make([]TopicNode, len(nodes))
	for i, n := range nodes {
		n.Children = cloneNodes(n.Children)
		out[i] = n
	}
	return out
}
