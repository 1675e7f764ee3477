package logger

import "context"

// Nop discards everything. Useful in tests where the logger is not under test.
type Nop struct{}

func NewNop() *Nop { return &Nop{} }

func (Nop) Debug(string, ...any) {}
func (Nop) Info(string, ...any)  {}
func (Nop) Warn(string, ...any)  {}
func (Nop) Error(string, ...any) {}

func (Nop) Debugw(string, ...any) {}
func (Nop) Infow(string, ...any)  {}
func (Nop) Warnw(string, ...any)  {}
func (Nop) Errorw(string, ...any) {}

func (n Nop) Ctx(context.Context) Logger { return n }
func (n Nop) With(...any) Logger         { return n }

func (Nop) WithRequestID(ctx context.Context, _ string) context.Context { return ctx }

func (Nop) GenerateRequestID() string           { return "" }
func (Nop) GetRequestID(context.Context) string { return "" }

func (Nop) Log(Level, string, ...Attr)                          {}
func (Nop) LogAttrs(context.Context, Level, string, ...Attr)    {}
