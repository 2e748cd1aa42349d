package driver

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

const canonicalSource = `configuration cfg of top is
    for rtl
        for u0: comp
            use entity work.impl(arch);
        end for;
    end for;
end configuration cfg;
`

const messySource = "configuration cfg of top is\n  for rtl\n for u0 :comp\nuse entity work.impl( arch ) ;\n  end for;end for;\nend configuration cfg;\n"

func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

type recordingSink struct {
	mu     sync.Mutex
	events []Event
}

func (s *recordingSink) OnEvent(evt Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, evt)
}

func (s *recordingSink) statuses(file string) []Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []Status
	for _, e := range s.events {
		if e.File == file {
			out = append(out, e.Status)
		}
	}
	return out
}
