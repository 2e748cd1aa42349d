package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const (
	maxSeedBytes = 64 << 10
)

var inlineSeeds = []string{
	"",
	"configuration c of e is for rtl end for; end;",
	"library ieee; use ieee.std_logic_1164.all;\nconfiguration c of e is for rtl(0) end for; end configuration c;",
	"configuration c of e is for a for u: comp use entity work.x(y) generic map (N => 1) port map (a => b, c => open); end for; end for; end;",
	"configuration c of e is for a for all: comp use open; end for; for others: comp use configuration lib.cfg; end for; end for; end;",
	"configuration c of e is use vunit v1, v2; for a for u1, u2: comp use vunit w; for arch end for; end for; end for; end;",
	"-- lead\nconfiguration c of e is /* block */ for rtl -- tail\n end for; end;",
	"configuration \\odd name\\ of e is for g(1 to 3) end for; end;",
	"for all : comp use entity work.e;",
}

func addCorpusSeeds(f *testing.F) {
	for _, s := range inlineSeeds {
		f.Add([]byte(s))
	}
	addTestdataSeeds(f)
}

func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	// все *.vhd и *.vhdl из testdata
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() {
			return nil
		}
		switch filepath.Ext(path) {
		case ".vhd", ".vhdl":
		default:
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clampSeed(src))
		return nil
	})
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}
