package editor

const maxNameLen = 24

// invalid-name message shown inside the rename dialogs.
const msgInvalidName = "Use A-Z, 0-9, and _ only"
const msgDuplicateName = "Tag name already exists"

// BeginTagRename opens the rename dialog for the definition at index i,
// seeding the buffer with the current name.
func (s *Session) BeginTagRename(i int) {
	if i < 0 || i >= len(s.doc.TagDefs) {
		return
	}
	s.renameTag = i
	s.textBuf = s.doc.TagDefs[i].Name
	s.textErr = ""
	s.OpenDialog(winTagRename)
}

// BeginMapRename opens the rename dialog for the document name.
func (s *Session) BeginMapRename() {
	s.textBuf = s.doc.Name
	s.textErr = ""
	s.OpenDialog(winMapRename)
}

// handleTextKey services the keyboard while a text dialog is open. Enter
// commits, Escape cancels, Backspace edits; everything else is swallowed
// so shortcuts cannot fire underneath the dialog.
func (s *Session) handleTextKey(k Key) bool {
	switch k {
	case KeyEnter:
		s.commitTextDialog()
	case KeyEscape:
		s.cancelTextDialog()
	case KeyBackspace:
		if len(s.textBuf) > 0 {
			s.textBuf = s.textBuf[:len(s.textBuf)-1]
			s.textErr = ""
		}
	}
	return true
}

func (s *Session) handleChar(r rune) bool {
	if !s.open[winTagRename] && !s.open[winMapRename] {
		return false
	}
	if r < 0x20 || len(s.textBuf) >= maxNameLen {
		return true
	}
	s.textBuf += string(r)
	s.textErr = ""
	return true
}

// commitTextDialog applies the buffered name. Validation failures keep
// the dialog open with an error message and do not touch the document.
func (s *Session) commitTextDialog() {
	switch {
	case s.open[winTagRename]:
		err := s.RenameTagDef(s.renameTag, s.textBuf)
		switch err {
		case nil:
			s.CloseDialog(winTagRename)
			s.renameTag = -1
		case ErrInvalidName:
			s.textErr = msgInvalidName
		case ErrDuplicateName:
			s.textErr = msgDuplicateName
		default:
			s.CloseDialog(winTagRename)
			s.renameTag = -1
		}
	case s.open[winMapRename]:
		if !ValidTagName(s.textBuf) {
			s.textErr = msgInvalidName
			return
		}
		if s.doc.Name != s.textBuf {
			s.doc.Name = s.textBuf
			s.markDirty()
		}
		s.CloseDialog(winMapRename)
	}
}

// cancelTextDialog discards the buffered edit.
func (s *Session) cancelTextDialog() {
	s.CloseDialog(winTagRename)
	s.CloseDialog(winMapRename)
	s.renameTag = -1
	s.textBuf, s.textErr = "", ""
}
