package wasmmem

import (
	"context"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"

	"github.com/slawlabs/linearcore/hostio"
)

// InstantiateHost builds and instantiates the "env" host module. It
// exports emit(ptr, len), which copies that span of the caller's memory
// to out. Guests compiled against this ABI print through it.
func InstantiateHost(ctx context.Context, rt wazero.Runtime, out hostio.Output) (api.Module, error) {
	return rt.NewHostModuleBuilder("env").
		NewFunctionBuilder().
		WithFunc(func(_ context.Context, m api.Module, ptr, n uint32) {
			b, ok := m.Memory().Read(ptr, n)
			if !ok {
				return
			}
			_ = out.Emit(b)
		}).
		Export("emit").
		Instantiate(ctx)
}
