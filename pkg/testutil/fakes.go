// Package testutil provides fakes for the bootstrap collaborator
// interfaces, so decision-logic tests run without touching the real
// mount table, interpreter, or git binary.
package testutil

// FakeFSInfo is a scripted fsinfo.Provider.
type FakeFSInfo struct {
	Type string
	Err  error

	// Calls records the paths queried.
	Calls []string
}

func (f *FakeFSInfo) FSType(path string) (string, error) {
	f.Calls = append(f.Calls, path)
	if f.Err != nil {
		return "", f.Err
	}
	return f.Type, nil
}

// FakeInterpreter is a scripted interpreter.Provider.
type FakeInterpreter struct {
	Raw string
	Err error
}

func (f *FakeInterpreter) Version() (string, error) {
	if f.Err != nil {
		return "", f.Err
	}
	return f.Raw, nil
}

// FakeHooks is a scripted bootstrap.HooksInspector.
type FakeHooks struct {
	Path string
	Set  bool
	Err  error
}

func (f *FakeHooks) HooksPath() (string, bool, error) {
	if f.Err != nil {
		return "", false, f.Err
	}
	return f.Path, f.Set, nil
}
