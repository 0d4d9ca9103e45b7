package page

// HasBookmark reports whether id is bookmarked.
func (m *Manager[P]) HasBookmark(id uint8) bool {
	_, ok := m.bookmarks[id]
	return ok
}

// FindBookmarked returns the page bookmarked as id.
func (m *Manager[P]) FindBookmarked(id uint8, focus Focus) (P, bool) {
	idx, ok := m.bookmarks[id]
	if !ok {
		var zero P
		return zero, false
	}
	return m.Find(idx, focus)
}

// Bookmark associates id with the page at index. It fails when index is out
// of range, or when id is already taken and overwrite is false.
func (m *Manager[P]) Bookmark(id uint8, index int, overwrite bool) bool {
	if index < 0 || index >= len(m.pages) {
		return false
	}
	if _, taken := m.bookmarks[id]; taken && !overwrite {
		return false
	}
	m.bookmarks[id] = index
	m.log.Debug("page bookmarked", "id", id, "index", index, "uuid", m.pages[index].UUID())
	return true
}

// BookmarkUUID is Bookmark for the page with the given uuid.
func (m *Manager[P]) BookmarkUUID(id uint8, uuid string, overwrite bool) bool {
	idx, ok := m.FindIndex(uuid)
	if !ok {
		return false
	}
	return m.Bookmark(id, idx, overwrite)
}

// Unbookmark forgets id.
func (m *Manager[P]) Unbookmark(id uint8) {
	delete(m.bookmarks, id)
}
