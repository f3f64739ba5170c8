// Code generated by impgen. DO NOT EDIT.

package dirscan_test

import (
	filesystem "github.com/joe/dirmonitor/pkg/filesystem"
	_imptest "github.com/toejough/imptest/imptest"
	os "os"
)

// FileSystemMockHandle is the test handle for FileSystem.
type FileSystemMockHandle struct {
	Mock       filesystem.FileSystem
	Method     *FileSystemMockMethods
	Controller *_imptest.Imp
}

// FileSystemMockListArgs holds typed arguments for List.
type FileSystemMockListArgs struct {
	Path string
}

// FileSystemMockListCall wraps DependencyCall with typed GetArgs and InjectReturnValues.
type FileSystemMockListCall struct {
	*_imptest.DependencyCall
}

// GetArgs returns the typed arguments for this call.
func (c *FileSystemMockListCall) GetArgs() FileSystemMockListArgs {
	raw := c.RawArgs()
	return FileSystemMockListArgs{
		Path: raw[0].(string),
	}
}

// InjectReturnValues specifies the typed values the mock should return.
func (c *FileSystemMockListCall) InjectReturnValues(result0 filesystem.FileScanner, result1 error) {
	c.DependencyCall.InjectReturnValues(result0, result1)
}

// FileSystemMockListMethod wraps DependencyMethod with typed returns.
type FileSystemMockListMethod struct {
	*_imptest.DependencyMethod
	// Eventually is the async version of this method for concurrent code.
	Eventually *FileSystemMockListMethod
}

// ExpectCalledWithExactly waits for a call with exactly the specified arguments.
func (m *FileSystemMockListMethod) ExpectCalledWithExactly(path string) *FileSystemMockListCall {
	call := m.DependencyMethod.ExpectCalledWithExactly(path)
	return &FileSystemMockListCall{DependencyCall: call}
}

// ExpectCalledWithMatches waits for a call with arguments matching the given matchers.
func (m *FileSystemMockListMethod) ExpectCalledWithMatches(matchers ...any) *FileSystemMockListCall {
	call := m.DependencyMethod.ExpectCalledWithMatches(matchers...)
	return &FileSystemMockListCall{DependencyCall: call}
}

// FileSystemMockMethods holds method wrappers for setting expectations.
type FileSystemMockMethods struct {
	List *FileSystemMockListMethod
	Stat *FileSystemMockStatMethod
}

// FileSystemMockStatArgs holds typed arguments for Stat.
type FileSystemMockStatArgs struct {
	Path string
}

// FileSystemMockStatCall wraps DependencyCall with typed GetArgs and InjectReturnValues.
type FileSystemMockStatCall struct {
	*_imptest.DependencyCall
}

// GetArgs returns the typed arguments for this call.
func (c *FileSystemMockStatCall) GetArgs() FileSystemMockStatArgs {
	raw := c.RawArgs()
	return FileSystemMockStatArgs{
		Path: raw[0].(string),
	}
}

// InjectReturnValues specifies the typed values the mock should return.
func (c *FileSystemMockStatCall) InjectReturnValues(result0 os.FileInfo, result1 error) {
	c.DependencyCall.InjectReturnValues(result0, result1)
}

// FileSystemMockStatMethod wraps DependencyMethod with typed returns.
type FileSystemMockStatMethod struct {
	*_imptest.DependencyMethod
	// Eventually is the async version of this method for concurrent code.
	Eventually *FileSystemMockStatMethod
}

// ExpectCalledWithExactly waits for a call with exactly the specified arguments.
func (m *FileSystemMockStatMethod) ExpectCalledWithExactly(path string) *FileSystemMockStatCall {
	call := m.DependencyMethod.ExpectCalledWithExactly(path)
	return &FileSystemMockStatCall{DependencyCall: call}
}

// ExpectCalledWithMatches waits for a call with arguments matching the given matchers.
func (m *FileSystemMockStatMethod) ExpectCalledWithMatches(matchers ...any) *FileSystemMockStatCall {
	call := m.DependencyMethod.ExpectCalledWithMatches(matchers...)
	return &FileSystemMockStatCall{DependencyCall: call}
}

// MockFileSystem creates a new FileSystemMockHandle for testing.
func MockFileSystem(t _imptest.TestReporter) *FileSystemMockHandle {
	ctrl := _imptest.NewImp(t)
	methods := &FileSystemMockMethods{
		List: newFileSystemMockListMethod(_imptest.NewDependencyMethod(ctrl, "List")),
		Stat: newFileSystemMockStatMethod(_imptest.NewDependencyMethod(ctrl, "Stat")),
	}
	h := &FileSystemMockHandle{
		Method:     methods,
		Controller: ctrl,
	}
	h.Mock = &mockFileSystemImpl{handle: h}
	return h
}

// mockFileSystemImpl implements filesystem.FileSystem.
type mockFileSystemImpl struct {
	handle *FileSystemMockHandle
}

// List implements filesystem.FileSystem.List.
func (impl *mockFileSystemImpl) List(path string) (filesystem.FileScanner, error) {
	call := &_imptest.GenericCall{
		MethodName:   "List",
		Args:         []any{path},
		ResponseChan: make(chan _imptest.GenericResponse, 1),
	}
	impl.handle.Controller.CallChan <- call
	resp := <-call.ResponseChan
	if resp.Type == "panic" {
		panic(resp.PanicValue)
	}

	var result1 filesystem.FileScanner
	if len(resp.ReturnValues) > 0 {
		if value, ok := resp.ReturnValues[0].(filesystem.FileScanner); ok {
			result1 = value
		}
	}

	var result2 error
	if len(resp.ReturnValues) > 1 {
		if value, ok := resp.ReturnValues[1].(error); ok {
			result2 = value
		}
	}

	return result1, result2
}

// Stat implements filesystem.FileSystem.Stat.
func (impl *mockFileSystemImpl) Stat(path string) (os.FileInfo, error) {
	call := &_imptest.GenericCall{
		MethodName:   "Stat",
		Args:         []any{path},
		ResponseChan: make(chan _imptest.GenericResponse, 1),
	}
	impl.handle.Controller.CallChan <- call
	resp := <-call.ResponseChan
	if resp.Type == "panic" {
		panic(resp.PanicValue)
	}

	var result1 os.FileInfo
	if len(resp.ReturnValues) > 0 {
		if value, ok := resp.ReturnValues[0].(os.FileInfo); ok {
			result1 = value
		}
	}

	var result2 error
	if len(resp.ReturnValues) > 1 {
		if value, ok := resp.ReturnValues[1].(error); ok {
			result2 = value
		}
	}

	return result1, result2
}

// newFileSystemMockListMethod creates a typed method wrapper with Eventually initialized.
func newFileSystemMockListMethod(dm *_imptest.DependencyMethod) *FileSystemMockListMethod {
	m := &FileSystemMockListMethod{DependencyMethod: dm}
	m.Eventually = &FileSystemMockListMethod{DependencyMethod: dm.Eventually}
	return m
}

// newFileSystemMockStatMethod creates a typed method wrapper with Eventually initialized.
func newFileSystemMockStatMethod(dm *_imptest.DependencyMethod) *FileSystemMockStatMethod {
	m := &FileSystemMockStatMethod{DependencyMethod: dm}
	m.Eventually = &FileSystemMockStatMethod{DependencyMethod: dm.Eventually}
	return m
}
