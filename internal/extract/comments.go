package extract

import (
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"

	"outline/internal/model"
)

// ImportantComment classifies a single comment line against the closed tag
// vocabulary. Comments matching no tag return nil and are dropped.
func ImportantComment(text string) *model.Comment {
	if text == "" {
		return nil
	}
	for _, tag := range model.CommentTypes {
		if strings.Contains(text, string(tag)) {
			return &model.Comment{Content: text, CommentType: tag}
		}
	}
	return nil
}

// OwnedComments collects the important comments that sit directly in node's
// child list, without descending into nested blocks.
func OwnedComments(node *sitter.Node, source []byte) []model.Comment {
	if node == nil {
		return nil
	}

	var comments []model.Comment
	for i := uint(0); i < node.ChildCount(); i++ {
		child := node.Child(i)
		if child.Kind() != "comment" {
			continue
		}
		if c := ImportantComment(Text(child, source)); c != nil {
			comments = append(comments, *c)
		}
	}
	return comments
}

// HeaderComments returns the comment lines preceding the first statement of
// a module.
func HeaderComments(moduleNode *sitter.Node, source []byte) []string {
	var header []string
	for i := uint(0); i < moduleNode.ChildCount(); i++ {
		child := moduleNode.Child(i)
		if child.Kind() == "comment" {
			header = append(header, Text(child, source))
			continue
		}
		break
	}
	return header
}

// FooterComments returns the trailing comment lines after the last statement
// of a module. A comment sharing the last statement's line belongs to that
// statement, not the footer, and a comment-only module has a header, not a
// footer.
func FooterComments(moduleNode *sitter.Node, source []byte) []string {
	lastIdx := -1
	lastRow := -1
	for i := int(moduleNode.ChildCount()) - 1; i >= 0; i-- {
		child := moduleNode.Child(uint(i))
		if child.Kind() != "comment" {
			lastIdx = i
			lastRow = int(child.EndPosition().Row)
			break
		}
	}
	if lastIdx < 0 {
		return nil
	}

	var footer []string
	for i := lastIdx + 1; i < int(moduleNode.ChildCount()); i++ {
		child := moduleNode.Child(uint(i))
		if int(child.StartPosition().Row) == lastRow {
			continue
		}
		footer = append(footer, Text(child, source))
	}
	return footer
}
