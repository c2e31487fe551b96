package chat

import (
	"context"

	"github.com/cockroachdb/errors"
)

// SystemInstruction primes the support model with store knowledge.
const SystemInstruction = `You are the AI Staff for JVDZ Store.
1. Inventory Knowledge: We sell everything: PC (Steam, Riot, Blizzard), Console (PSN, Xbox, Nintendo), Mobile (Free Fire, PUBG, Roblox), Subs (Netflix, Spotify, IPTV), and Software (Windows, Antivirus).
2. Payment: BaridiMob and CCP only.
3. Process: Client orders -> Uploads Receipt -> We verify -> We email code at 8 PM daily.
4. Constraint: Be polite but short. If they ask for a human, say: 'Email us at contact@jvdzstore.com'.`

// Failure classes of the external AI service. Each maps to its own
// user-facing fallback string; none of them ever surfaces as an error to the
// page.
var (
	ErrNoCredential  = errors.New("chat credential missing")
	ErrBadCredential = errors.New("chat credential rejected")
	ErrUnavailable   = errors.New("chat model unavailable")
	ErrRateLimited   = errors.New("chat rate limited")
)

// Model is one conversational session: it holds the running context, so
// Send only carries the newest user message.
type Model interface {
	Send(ctx context.Context, message string) (string, error)
}
