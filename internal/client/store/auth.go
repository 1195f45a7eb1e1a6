package store

// AuthState is the single user's session.
type AuthState struct {
	Token string
	Error string
}

// IsAuthenticated is true iff a token is held.
func (s AuthState) IsAuthenticated() bool { return s.Token != "" }

type AuthAction interface{ authAction() }

type LoginSuccess struct{ Token string }

type LoginFailure struct{ Message string }

type Logout struct{}

func (LoginSuccess) authAction() {}
func (LoginFailure) authAction() {}
func (Logout) authAction()       {}

func ReduceAuth(state AuthState, action AuthAction) AuthState {
	switch a := action.(type) {
	case LoginSuccess:
		return AuthState{Token: a.Token}
	case LoginFailure:
		return AuthState{Error: a.Message}
	case Logout:
		return AuthState{}
	default:
		return state
	}
}

// AuthStore is the session store. It doubles as the token source for the
// HTTP client.
type AuthStore struct {
	*Store[AuthState, AuthAction]
}

func NewAuthStore(initial AuthState) *AuthStore {
	return &AuthStore{Store: New[AuthState, AuthAction](initial, ReduceAuth)}
}

func (s *AuthStore) Token() string {
	return s.State().Token
}
