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

package statsview

import (
	"fmt"
	"io"
	"sync"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
)

// Address of the HTTP server.
const Address = "localhost:12600"

const url = "/debug/statsview"

var (
	launch   sync.Once
	launched bool
	mu       sync.Mutex
)

// URL returns the address at which the statistics can be viewed.
func URL() string {
	return fmt.Sprintf("http://%s%s", Address, url)
}

// Launch starts the server on a new goroutine. Subsequent calls only report
// the address. Returns true if this call started the server.
func Launch(output io.Writer) bool {
	started := false
	launch.Do(func() {
		viewer.SetConfiguration(viewer.WithAddr(Address))
		mgr := statsview.New()
		go mgr.Start()

		mu.Lock()
		launched = true
		mu.Unlock()
		started = true
	})

	if started {
		fmt.Fprintf(output, "stats server available at %s\n", URL())
	} else {
		fmt.Fprintf(output, "stats server already running at %s\n", URL())
	}

	return started
}

// Running returns true if the server has been launched.
func Running() bool {
	mu.Lock()
	defer mu.Unlock()
	return launched
}
