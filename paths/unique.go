// This file is part of cmgui.
//
// cmgui is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// cmgui is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with cmgui.  If not, see <https://www.gnu.org/licenses/>.

package paths

import (
	"fmt"
	"strings"
	"time"
)

// UniqueFilename creates a filename from the prefix, an optional label and
// the current time. Used to name journal files and object graph dumps when
// the user does not supply a name. The function does not check that the file
// does not already exist.
//
// Format of the returned string is:
//
//	prefix_label_YYYYMMDD_HHMMSS.ext
//
// The label is omitted if it is empty, as is the extension.
func UniqueFilename(prefix string, label string, ext string) string {
	return uniqueFilename(prefix, label, ext, time.Now())
}

func uniqueFilename(prefix string, label string, ext string, n time.Time) string {
	fn := prefix
	if l := strings.TrimSpace(label); l != "" {
		fn = fmt.Sprintf("%s_%s", fn, l)
	}
	fn = fmt.Sprintf("%s_%s", fn, n.Format("20060102_150405"))
	if ext != "" {
		fn = fmt.Sprintf("%s.%s", fn, strings.TrimPrefix(ext, "."))
	}
	return fn
}
