// Package ident derives stable hierarchical identity strings for code
// blocks. An ID is the parent's ID plus a kind-tagged segment, so block kind
// is recoverable from the ID alone and IDs are deterministic across runs on
// unchanged source.
package ident

import (
	"fmt"
	"strings"

	"outline/internal/model"
)

// Separator joins ID segments. It never occurs in Python identifiers or in
// sane file paths, keeping segment boundaries unambiguous.
const Separator = "__>__"

const (
	moduleTag     = "MODULE"
	classTag      = "CLASS_"
	functionTag   = "FUNCTION_"
	standaloneTag = "STANDALONE_CODE_BLOCK_"
)

// ForModule derives a module ID from its file path.
func ForModule(filePath string) string {
	return filePath + Separator + moduleTag
}

// ForClass derives a class ID from its parent's ID and the class name.
// Two sibling classes with the same name map to the same ID; the traversal
// skips the second definition.
func ForClass(parentID, className string) string {
	return parentID + Separator + classTag + className
}

// ForFunction derives a function ID from its parent's ID and the function
// name. Same-named sibling functions collide, as for classes.
func ForFunction(parentID, functionName string) string {
	return parentID + Separator + functionTag + functionName
}

// ForStandalone derives a standalone-block ID from its parent's ID and the
// block's 1-based position among the parent's standalone runs.
func ForStandalone(parentID string, ordinal int) string {
	return fmt.Sprintf("%s%s%s%d", parentID, Separator, standaloneTag, ordinal)
}

// KindOf recovers the block kind encoded in an ID's last segment. It answers
// ancestry questions (such as "is this ancestor a class?") without an object
// reference.
func KindOf(id string) (model.BlockType, bool) {
	idx := strings.LastIndex(id, Separator)
	if idx < 0 {
		return "", false
	}
	segment := id[idx+len(Separator):]

	switch {
	case segment == moduleTag:
		return model.BlockTypeModule, true
	case strings.HasPrefix(segment, classTag):
		return model.BlockTypeClass, true
	case strings.HasPrefix(segment, functionTag):
		return model.BlockTypeFunction, true
	case strings.HasPrefix(segment, standaloneTag):
		return model.BlockTypeStandalone, true
	}
	return "", false
}

// ParentOf returns the prefix before the last segment: the parent's ID for
// class/function/standalone IDs, the file path for a module ID.
func ParentOf(id string) string {
	idx := strings.LastIndex(id, Separator)
	if idx < 0 {
		return ""
	}
	return id[:idx]
}
