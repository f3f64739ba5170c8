package shared_test

import (
	"testing"
	"time"

	. "github.com/onsi/gomega" //nolint:revive // Dot import is idiomatic for Gomega matchers

	"github.com/joe/dirmonitor/internal/dirscan"
	"github.com/joe/dirmonitor/internal/tui/shared"
)

func TestFormatBytes(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	g.Expect(shared.FormatBytes(0)).Should(Equal("0 B"))
	g.Expect(shared.FormatBytes(500)).Should(Equal("500 B"))
	g.Expect(shared.FormatBytes(1024)).Should(Equal("1.0 KB"))
	g.Expect(shared.FormatBytes(1536)).Should(Equal("1.5 KB"))
	g.Expect(shared.FormatBytes(1024 * 1024)).Should(Equal("1.0 MB"))
	g.Expect(shared.FormatBytes(5 * 1024 * 1024 * 1024)).Should(Equal("5.0 GB"))
}

func TestEntryName(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	g.Expect(shared.EntryName(dirscan.Entry{Name: "a.txt"})).Should(Equal("a.txt"))
	g.Expect(shared.EntryName(dirscan.Entry{Name: "c", IsDir: true})).Should(Equal("c/"))
}

func TestRenderEntryLine(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	mod := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	file := shared.RenderEntryLine(dirscan.Entry{Name: "a.txt", Size: 2048, ModTime: mod})
	g.Expect(file).Should(And(ContainSubstring("a.txt"), ContainSubstring("2.0 KB")))

	dir := shared.RenderEntryLine(dirscan.Entry{Name: "c", IsDir: true, Size: 4096, ModTime: mod})
	g.Expect(dir).Should(ContainSubstring("c/"))
	g.Expect(dir).ShouldNot(ContainSubstring("4.0 KB"))
}

func TestTruncatePath(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	g.Expect(shared.TruncatePath("/short", 20)).Should(Equal("/short"))
	g.Expect(shared.TruncatePath("/a/very/long/path/name", 10)).Should(Equal("...th/name"))
	g.Expect(shared.TruncatePath("/a/very/long/path/name", 3)).Should(Equal("/a/very/long/path/name"))
}
