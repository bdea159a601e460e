package learnpath

import (
	"fmt"

	"github.com/learnyst/learnyst/internal/subject"
)

type category struct {
	slug   string
	name   string
	topics []string
}

// outlineCategories is the placeholder learning path. Names and order are
// part of the dashboard's observable behavior and must not change.
var outlineCategories = []category{
	{
		slug: "introduction",
		name: "Introduction and Fundamentals",
		topics: []string{
			"Basic Concepts and Definitions",
			"Historical Context and Development",
			"Key Terminology and Vocabulary",
			"Foundational Principles",
		},
	},
	{
		slug: "core",
		name: "Core Concepts and Theory",
		topics: []string{
			"Theoretical Framework",
			"Main Principles and Laws",
			"Key Models and Systems",
			"Important Relationships",
		},
	},
	{
		slug: "intermediate",
		name: "Intermediate Topics",
		topics: []string{
			"Advanced Theoretical Concepts",
			"Practical Applications",
			"Problem-Solving Techniques",
			"Case Studies and Examples",
		},
	},
	{
		slug: "advanced",
		name: "Advanced Applications",
		topics: []string{
			"Complex Problem Solving",
			"Real-World Implementation",
			"Current Research and Trends",
		},
	},
}

// Outline returns a fresh copy of the fixed four-category learning path.
func Outline() []subject.TopicNode {
	roots := make([]subject.TopicNode, 0, len(outlineCategories))
	for _, c := range outlineCategories {
		children := make([]subject.TopicNode, 0, len(c.topics))
		for i, name := range c.topics {
			children = append(children, subject.TopicNode{
				ID:   fmt.Sprintf("%s-%d", c.slug, i+1),
				Name: name,
			})
		}
		roots = append(roots, subject.TopicNode{
			ID:       c.slug,
			Name:     c.name,
			Children: children,
		})
	}
	return roots
}

// CountNodes returns the number of nodes in the tree, roots included.
func CountNodes(nodes []subject.TopicNode) int {
	n := 0
	for _, node := range nodes {
		n += 1 + CountNodes(node.Children)
	}
	return n
}

// CountLeaves returns the number of nodes without children.
func CountLeaves(nodes []subject.TopicNode) int {
	n := 0
	for _, node := range nodes {
		if len(node.Children) == 0 {
			n++
			continue
		}
		n += CountLeaves(node.Children)
	}
	return n
}
