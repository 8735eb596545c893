package sweeper

import "path/filepath"

// node is one pending step of the traversal work-list.
// classify is false only for the root, which is listed but never itself
// reported as a candidate.
type node struct {
	path     string
	depth    int
	classify bool
}

// FindVenvDirs walks the tree under Root top-down and returns every directory
// the classifier matches, in traversal order (depth-first, siblings in
// directory-listing order). Matched folders are never descended into, so a
// venv nested inside another venv is not reported separately.
//
// The walk uses an explicit work-list rather than call-stack recursion, so
// deeply nested trees cannot overflow the stack. Any error listing a
// directory silently ends that subtree; the rest of the scan continues.
func (e *Engine) FindVenvDirs() ([]Candidate, error) {
	stack := []node{{path: e.Root, depth: 0, classify: false}}

	var found []Candidate

	for len(stack) > 0 {
		if err := e.checkCancellation(); err != nil {
			return nil, err
		}

		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if current.classify && IsVenvDir(e.FS, current.path) {
			found = append(found, Candidate{Path: current.path})
			e.emit(CandidateFound{Path: current.path})

			continue
		}

		if e.MaxDepth >= 0 && current.depth > e.MaxDepth {
			continue
		}

		entries, err := e.FS.ReadDir(current.path)
		if err != nil {
			// Unreadable subtree contributes nothing; the scan goes on.
			continue
		}

		// Push in reverse so children pop in directory-listing order.
		for i := len(entries) - 1; i >= 0; i-- {
			entry := entries[i]
			if !entry.IsDir() {
				continue
			}

			child := e.FS.Join(current.path, entry.Name())
			if e.isExcluded(child) {
				continue
			}

			stack = append(stack, node{path: child, depth: current.depth + 1, classify: true})
		}
	}

	return found, nil
}

// isExcluded matches the child path, relative to the root, against the
// configured exclude pattern.
func (e *Engine) isExcluded(child string) bool {
	if e.filter == nil {
		return false
	}

	rel, err := filepath.Rel(e.Root, child)
	if err != nil {
		return false
	}

	return e.filter.ShouldSkip(rel)
}
