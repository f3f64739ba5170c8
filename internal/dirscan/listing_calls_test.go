//nolint:varnamelen // Test files use idiomatic short variable names (t, g, etc.)
package dirscan_test

//go:generate go run github.com/toejough/imptest/impgen --dependency filesystem.FileSystem
//go:generate go run github.com/toejough/imptest/impgen --dependency filesystem.FileScanner

import (
	"errors"
	"os"
	"testing"
	"time"

	. "github.com/onsi/gomega" //nolint:revive // Dot import is idiomatic for Gomega matchers

	"github.com/joe/dirmonitor/internal/dirscan"
	"github.com/joe/dirmonitor/pkg/filesystem"
)

// These tests drive the scanner against generated FileSystem and FileScanner mocks,
// so every call it makes on the listing is checked in order, including the final Close.

func dirInfo(t *testing.T) os.FileInfo {
	t.Helper()

	info, err := os.Stat(t.TempDir())
	if err != nil {
		t.Fatalf("stat temp dir: %v", err)
	}

	return info
}

func TestListing_NewValidatesAndClosesListing(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	fsMock := MockFileSystem(t)
	validation := MockFileScanner(t)
	info := dirInfo(t)
	done := make(chan struct{})

	go func() {
		defer close(done)

		fsMock.Method.Stat.ExpectCalledWithExactly("/d").InjectReturnValues(info, nil)
		fsMock.Method.List.ExpectCalledWithExactly("/d").InjectReturnValues(validation.Mock, nil)
		validation.Method.Close.ExpectCalledWithExactly().InjectReturnValues(nil)
	}()

	scanner, err := dirscan.New(fsMock.Mock, "/d")
	g.Expect(err).ShouldNot(HaveOccurred())
	g.Expect(scanner.Path()).Should(Equal("/d"))
	g.Eventually(done, time.Second).Should(BeClosed())
}

func TestListing_EarlyBreakClosesListing(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	fsMock := MockFileSystem(t)
	validation := MockFileScanner(t)
	listing := MockFileScanner(t)
	info := dirInfo(t)
	done := make(chan struct{})

	go func() {
		defer close(done)

		fsMock.Method.Stat.ExpectCalledWithExactly("/d").InjectReturnValues(info, nil)
		fsMock.Method.List.ExpectCalledWithExactly("/d").InjectReturnValues(validation.Mock, nil)
		validation.Method.Close.ExpectCalledWithExactly().InjectReturnValues(nil)

		fsMock.Method.List.ExpectCalledWithExactly("/d").InjectReturnValues(listing.Mock, nil)
		listing.Method.Next.ExpectCalledWithExactly().InjectReturnValues(filesystem.FileInfo{Name: "a", Path: "/d/a"}, true)
		listing.Method.Close.ExpectCalledWithExactly().InjectReturnValues(nil)
	}()

	scanner, err := dirscan.New(fsMock.Mock, "/d")
	g.Expect(err).ShouldNot(HaveOccurred())

	var first string

	for entry, err := range scanner.List() {
		g.Expect(err).ShouldNot(HaveOccurred())

		first = entry.Name

		break
	}

	g.Expect(first).Should(Equal("a"))
	g.Eventually(done, time.Second).Should(BeClosed())
}

func TestListing_ReadErrorClosesListing(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	fsMock := MockFileSystem(t)
	validation := MockFileScanner(t)
	listing := MockFileScanner(t)
	info := dirInfo(t)
	done := make(chan struct{})
	boom := errors.New("disk error")

	go func() {
		defer close(done)

		fsMock.Method.Stat.ExpectCalledWithExactly("/d").InjectReturnValues(info, nil)
		fsMock.Method.List.ExpectCalledWithExactly("/d").InjectReturnValues(validation.Mock, nil)
		validation.Method.Close.ExpectCalledWithExactly().InjectReturnValues(nil)

		fsMock.Method.List.ExpectCalledWithExactly("/d").InjectReturnValues(listing.Mock, nil)
		listing.Method.Next.ExpectCalledWithExactly().InjectReturnValues(filesystem.FileInfo{Name: "a", Size: 10}, true)
		listing.Method.Next.ExpectCalledWithExactly().InjectReturnValues(filesystem.FileInfo{}, false)
		listing.Method.Err.ExpectCalledWithExactly().InjectReturnValues(boom)
		listing.Method.Close.ExpectCalledWithExactly().InjectReturnValues(nil)
	}()

	scanner, err := dirscan.New(fsMock.Mock, "/d")
	g.Expect(err).ShouldNot(HaveOccurred())

	total, err := scanner.TotalSize()
	g.Expect(total).Should(BeZero())

	var ioErr *dirscan.IOError
	g.Expect(errors.As(err, &ioErr)).Should(BeTrue())
	g.Expect(ioErr.Op).Should(Equal("read"))
	g.Expect(errors.Is(err, boom)).Should(BeTrue())
	g.Eventually(done, time.Second).Should(BeClosed())
}

func TestListing_ActionErrorClosesListing(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	fsMock := MockFileSystem(t)
	validation := MockFileScanner(t)
	listing := MockFileScanner(t)
	info := dirInfo(t)
	done := make(chan struct{})
	stop := errors.New("stop")

	go func() {
		defer close(done)

		fsMock.Method.Stat.ExpectCalledWithExactly("/d").InjectReturnValues(info, nil)
		fsMock.Method.List.ExpectCalledWithExactly("/d").InjectReturnValues(validation.Mock, nil)
		validation.Method.Close.ExpectCalledWithExactly().InjectReturnValues(nil)

		fsMock.Method.List.ExpectCalledWithExactly("/d").InjectReturnValues(listing.Mock, nil)
		listing.Method.Next.ExpectCalledWithExactly().InjectReturnValues(filesystem.FileInfo{Name: "a"}, true)
		listing.Method.Close.ExpectCalledWithExactly().InjectReturnValues(nil)
	}()

	scanner, err := dirscan.New(fsMock.Mock, "/d")
	g.Expect(err).ShouldNot(HaveOccurred())

	err = scanner.ForEachMatching(nil, dirscan.ActionFunc(func(dirscan.Entry) error { return stop }))
	g.Expect(err).Should(BeIdenticalTo(stop))
	g.Eventually(done, time.Second).Should(BeClosed())
}
