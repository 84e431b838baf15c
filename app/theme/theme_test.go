package theme

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/expensivecode/folio/app/enum"
	"github.com/expensivecode/folio/app/theme/mocks"
)

// memStorage is an in-memory Storage surviving across controllers, like a client's cookie jar.
type memStorage struct {
	val       *enum.Theme
	saves     int
	remembers int
}

func (m *memStorage) Load() (enum.Theme, bool, error) {
	if m.val == nil {
		return enum.Theme{}, false, nil
	}
	return *m.val, true, nil
}

func (m *memStorage) Save(th enum.Theme) error {
	m.val = &th
	m.saves++
	return nil
}

func (m *memStorage) Remember(th enum.Theme) error {
	m.val = &th
	m.remembers++
	return nil
}

func (m *memStorage) Clear() error {
	m.val = nil
	return nil
}

func TestNew_Resolve(t *testing.T) {
	dark, light := enum.ThemeDark, enum.ThemeLight
	tests := []struct {
		name     string
		stored   *enum.Theme
		ambient  Ambient
		expected enum.Theme
		fromSt   bool
	}{
		{name: "nothing stored, ambient dark", ambient: StaticAmbient(true), expected: enum.ThemeDark},
		{name: "nothing stored, ambient light", ambient: StaticAmbient(false), expected: enum.ThemeLight},
		{name: "nothing stored, no ambient", ambient: nil, expected: enum.ThemeLight},
		{name: "stored light wins over ambient dark", stored: &light, ambient: StaticAmbient(true), expected: enum.ThemeLight, fromSt: true},
		{name: "stored dark wins over ambient light", stored: &dark, ambient: StaticAmbient(false), expected: enum.ThemeDark, fromSt: true},
		{name: "stored dark, no ambient", stored: &dark, ambient: nil, expected: enum.ThemeDark, fromSt: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			st := &memStorage{val: tc.stored}
			c := New(st, tc.ambient)
			assert.Equal(t, tc.expected, c.Mode())
			assert.Equal(t, tc.fromSt, c.Stored())
			require.NotNil(t, st.val, "resolved mode is persisted")
			assert.Equal(t, tc.expected, *st.val)
		})
	}
}

func TestNew_StoredValueNotRewritten(t *testing.T) {
	st := &mocks.StorageMock{
		LoadFunc: func() (enum.Theme, bool, error) { return enum.ThemeDark, true, nil },
	}
	c := New(st, StaticAmbient(false))
	assert.Equal(t, enum.ThemeDark, c.Mode())
	assert.Empty(t, st.SaveCalls())
	assert.Empty(t, st.RememberCalls())
	assert.Len(t, st.LoadCalls(), 1)
}

func TestNew_LoadFailureWritesNothing(t *testing.T) {
	st := &mocks.StorageMock{
		LoadFunc: func() (enum.Theme, bool, error) { return enum.Theme{}, false, errors.New("database is locked") },
	}
	c := New(st, StaticAmbient(false))
	assert.Equal(t, enum.ThemeLight, c.Mode(), "ambient used for this interaction")
	assert.False(t, c.Stored())
	assert.Empty(t, st.SaveCalls(), "stored value must survive a failed read")
	assert.Empty(t, st.RememberCalls())

	// an explicit choice is still saved
	st.SaveFunc = func(enum.Theme) error { return nil }
	c.Toggle()
	require.Len(t, st.SaveCalls(), 1)
	assert.Equal(t, enum.ThemeDark, st.SaveCalls()[0].Th)
}

func TestController_ToggleTwice(t *testing.T) {
	for _, start := range enum.ThemeValues {
		t.Run(start.String(), func(t *testing.T) {
			s := start
			c := New(&memStorage{val: &s}, nil)
			assert.Equal(t, start.Toggle(), c.Toggle())
			assert.Equal(t, start, c.Toggle())
			assert.Equal(t, start, c.Mode())
		})
	}
}

func TestController_TogglePersists(t *testing.T) {
	st := &memStorage{}
	c := New(st, StaticAmbient(true))
	assert.Equal(t, enum.ThemeDark, c.Mode())

	assert.Equal(t, enum.ThemeLight, c.Toggle())
	require.NotNil(t, st.val)
	assert.Equal(t, enum.ThemeLight, *st.val)
	assert.Equal(t, 1, st.remembers, "resolved mode is remembered")
	assert.Equal(t, 1, st.saves, "toggle is saved")

	// re-initialization reproduces the toggled mode regardless of ambient
	again := New(st, StaticAmbient(true))
	assert.Equal(t, enum.ThemeLight, again.Mode())
	assert.True(t, again.Stored())
}

func TestController_SaveFailureIgnored(t *testing.T) {
	st := &mocks.StorageMock{
		LoadFunc:     func() (enum.Theme, bool, error) { return enum.Theme{}, false, nil },
		SaveFunc:     func(th enum.Theme) error { return errors.New("quota exceeded") },
		RememberFunc: func(th enum.Theme) error { return errors.New("quota exceeded") },
	}
	c := New(st, StaticAmbient(true))
	assert.Equal(t, enum.ThemeDark, c.Mode())
	require.Len(t, st.RememberCalls(), 1)

	assert.NotPanics(t, func() { c.Toggle() })
	assert.Equal(t, enum.ThemeLight, c.Mode())
	require.Len(t, st.SaveCalls(), 1)
	assert.Equal(t, enum.ThemeLight, st.SaveCalls()[0].Th)
}

func TestController_Set(t *testing.T) {
	st := &memStorage{}
	c := New(st, nil)

	c.Set(enum.ThemeDark)
	assert.Equal(t, enum.ThemeDark, c.Mode())
	assert.Equal(t, enum.ThemeDark, *st.val)

	c.Set(enum.Theme{})
	assert.Equal(t, enum.ThemeLight, c.Mode(), "unset theme is stored as light")
	assert.Equal(t, enum.ThemeLight, *st.val)
}

func TestController_Class(t *testing.T) {
	c := New(&memStorage{}, StaticAmbient(true))
	assert.Equal(t, "dark", c.Class())
	c.Toggle()
	assert.Empty(t, c.Class())
}

func TestController_Forget(t *testing.T) {
	dark := enum.ThemeDark
	st := &memStorage{val: &dark}
	c := New(st, StaticAmbient(false))
	assert.True(t, c.Stored())

	assert.Equal(t, enum.ThemeLight, c.Forget())
	assert.False(t, c.Stored())
	assert.Nil(t, st.val, "stored mode dropped")
	assert.Equal(t, 0, st.saves+st.remembers, "forget persists nothing")

	again := New(st, StaticAmbient(true))
	assert.Equal(t, enum.ThemeDark, again.Mode(), "next interaction follows ambient")
	assert.False(t, again.Stored())
}

func TestController_ForgetFailureIgnored(t *testing.T) {
	st := &mocks.StorageMock{
		LoadFunc:  func() (enum.Theme, bool, error) { return enum.ThemeDark, true, nil },
		ClearFunc: func() error { return errors.New("db down") },
	}
	c := New(st, nil)
	assert.Equal(t, enum.ThemeLight, c.Forget())
	assert.Len(t, st.ClearCalls(), 1)
}
