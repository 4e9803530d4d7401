package hook

import (
	"fmt"
	"log"
	"sync"

	lua "github.com/Shopify/go-lua"
)

// luaPolicyFunc is the Lua global a policy script defines. It receives the
// nick and account name and returns true to allow the login.
const luaPolicyFunc = "user_can_login"

// LoginPolicy loads an operator-supplied Lua policy script and returns a
// hook callback for EventUserCanLogin. Script errors at call time are
// logged and treated as allow, so a broken policy never locks everyone out.
func LoginPolicy(path string) (func(payload any), error) {
	state := lua.NewState()
	lua.OpenLibraries(state)

	if err := lua.LoadFile(state, path, ""); err != nil {
		return nil, fmt.Errorf("load login policy: %w", err)
	}
	if err := state.ProtectedCall(0, 0, 0); err != nil {
		return nil, fmt.Errorf("run login policy: %w", err)
	}
	state.Global(luaPolicyFunc)
	defined := state.IsFunction(-1)
	state.Pop(1)
	if !defined {
		return nil, fmt.Errorf("login policy %s does not define %s", path, luaPolicyFunc)
	}

	// The Lua state is not safe for concurrent use.
	var mu sync.Mutex

	return func(payload any) {
		check, ok := payload.(*LoginCheck)
		if !ok || !check.Allowed {
			return
		}

		mu.Lock()
		defer mu.Unlock()

		state.Global(luaPolicyFunc)
		state.PushString(check.Nick)
		state.PushString(check.Account.Name)
		if err := state.ProtectedCall(2, 1, 0); err != nil {
			log.Printf("hook: login policy error: %v", err)
			return
		}
		allowed := state.ToBoolean(-1)
		state.Pop(1)
		if !allowed {
			check.Allowed = false
		}
	}, nil
}
