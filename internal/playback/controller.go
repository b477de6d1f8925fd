// Package playback drives a real player from the viewer's transport state and
// reports the player's clock back into it.
//
// Commands flow machine → player through a subscription; observations flow
// player → machine only through Sync, which the app calls on every tick.
// Listener callbacks never call back into the machine.
package playback

import (
	"time"

	"go.uber.org/zap"

	"github.com/llehouerou/gallery/internal/content"
	"github.com/llehouerou/gallery/internal/player"
	"github.com/llehouerou/gallery/internal/viewer"
)

// Players maps playable kinds to the player that renders them.
type Players struct {
	Audio player.Interface
	Video player.Interface
}

func (p Players) forKind(k content.Kind) player.Interface {
	switch k {
	case content.KindAudio:
		return p.Audio
	case content.KindVideo:
		return p.Video
	default:
		return nil
	}
}

// Controller attaches at most one media resource at a time, owned by the
// machine's active playable item.
type Controller struct {
	machine *viewer.Machine
	players Players
	log     *zap.Logger

	active     player.Interface
	itemID     string
	generation uint64
	startFail  bool // start rejected, report paused on next Sync
	syncing    bool
}

// New creates a controller and subscribes it to the machine.
func New(m *viewer.Machine, players Players, log *zap.Logger) *Controller {
	if log == nil {
		log = zap.NewNop()
	}
	c := &Controller{machine: m, players: players, log: log}
	m.Subscribe(c.onEvent)
	return c
}

// Generation increments every time the attached resource changes.
func (c *Controller) Generation() uint64 {
	return c.generation
}

// Active returns the player holding the current resource, or nil.
func (c *Controller) Active() player.Interface {
	return c.active
}

func (c *Controller) onEvent(ev viewer.Event) {
	switch ev.Kind {
	case viewer.EventItemChanged:
		c.detach()
		c.attach(ev.Current)
	case viewer.EventClosed:
		c.detach()
	case viewer.EventTransportChanged:
		if !c.syncing {
			c.apply(ev.Previous, ev.Current)
		}
	case viewer.EventModeChanged:
		// Minimize and restore leave playback untouched.
	}
}

// detach releases the previous resource before anything new is attached.
func (c *Controller) detach() {
	if c.active != nil {
		c.active.Stop()
	}
	c.active = nil
	c.itemID = ""
	c.startFail = false
	c.generation++
}

func (c *Controller) attach(snap viewer.Snapshot) {
	if !snap.Playable() {
		return
	}
	item := snap.Active.Item
	t := snap.Active.Transport

	p := c.players.forKind(item.Kind)
	c.itemID = item.ID
	if p == nil {
		c.log.Warn("no player for kind", zap.String("kind", item.Kind.String()))
		c.startFail = true
		return
	}

	if h, ok := p.(player.DurationHinter); ok {
		h.SetDuration(seconds(item.Duration))
	}

	if err := p.Play(item.MediaURL); err != nil {
		c.log.Warn("playback start failed",
			zap.String("item", item.ID),
			zap.String("locator", item.MediaURL),
			zap.Error(err),
		)
		c.startFail = true
		return
	}
	c.active = p

	if t.Elapsed > 0 {
		p.SeekTo(seconds(t.Elapsed))
	}
	if !t.Playing {
		p.Pause()
	}
	c.log.Debug("playback attached", zap.String("item", item.ID), zap.Uint64("generation", c.generation))
}

// apply mirrors user-driven transport changes onto the player.
func (c *Controller) apply(prev, cur viewer.Snapshot) {
	if cur.ItemID() != c.itemID {
		return
	}
	pt, ct := prev.Active.Transport, cur.Active.Transport
	if pt == nil || ct == nil {
		return
	}
	if c.active == nil {
		// A rejected start gets another try when the user presses play.
		if ct.Playing && !pt.Playing {
			c.attach(cur)
		}
		return
	}
	if pt.Elapsed != ct.Elapsed {
		c.active.SeekTo(seconds(ct.Elapsed))
	}
	if pt.Playing != ct.Playing {
		if ct.Playing {
			c.active.Resume()
		} else {
			c.active.Pause()
		}
	}
}

// Sync copies the player's clock into the machine. Observations for an item
// that is no longer active are dropped.
func (c *Controller) Sync() {
	snap := c.machine.Snapshot()
	if !snap.Playable() || snap.ItemID() != c.itemID {
		return
	}

	c.syncing = true
	defer func() { c.syncing = false }()

	if c.startFail {
		c.startFail = false
		c.machine.ReportPlayState(false)
		return
	}
	if c.active == nil {
		return
	}

	if d := c.active.Duration(); d > 0 {
		c.machine.ReportDuration(d.Seconds())
	}
	c.machine.ReportElapsed(c.active.Position().Seconds())
	c.machine.ReportPlayState(c.active.State() == player.Playing)
}

// Close stops whatever is attached.
func (c *Controller) Close() {
	if c.active != nil {
		c.active.Stop()
		c.active = nil
	}
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
