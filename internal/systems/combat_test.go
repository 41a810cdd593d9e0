package systems

import (
	"testing"

	"tunnel-server/internal/core/types/enums"
	"tunnel-server/internal/domain"
)

func TestAnnoyProtester(t *testing.T) {
	tests := []struct {
		name      string
		kind      enums.EntityKind
		amount    int
		hits      int
		wantState enums.ProtesterState
		wantScore int
	}{
		{"Regular survives one squirt", enums.EntityRegularProtester, domain.SquirtDamage, 1, enums.ProtesterActive, 0},
		{"Regular gives up after three squirts", enums.EntityRegularProtester, domain.SquirtDamage, 3, enums.ProtesterExiting, domain.ScoreSquirtRegular},
		{"Hardcore gives up after ten squirts", enums.EntityHardcoreProtester, domain.SquirtDamage, 10, enums.ProtesterExiting, domain.ScoreSquirtHardcore},
		{"Boulder kills hardcore", enums.EntityHardcoreProtester, domain.BoulderDamage, 1, enums.ProtesterExiting, domain.ScoreBoulderKill},
		{"Exiting ignores further damage", enums.EntityRegularProtester, domain.BoulderDamage, 3, enums.ProtesterExiting, domain.ScoreBoulderKill},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, _ := newTestWorld(1)
			p := spawnAt(w, domain.NewProtester(tt.kind, 10), 40, 40)

			for i := 0; i < tt.hits; i++ {
				Annoy(p, tt.amount, w)
			}

			if p.Protester.State != tt.wantState {
				t.Errorf("state = %v, want %v", p.Protester.State, tt.wantState)
			}
			if w.Progress.Score != tt.wantScore {
				t.Errorf("score = %d, want %d", w.Progress.Score, tt.wantScore)
			}
		})
	}
}

func TestAnnoyProtester_Stuns(t *testing.T) {
	w, q := newTestWorld(3)
	p := spawnAt(w, domain.NewProtester(enums.EntityRegularProtester, 10), 40, 40)

	Annoy(p, domain.SquirtDamage, w)

	if p.Protester.HP != 3 {
		t.Errorf("HP = %d, want 3", p.Protester.HP)
	}
	if p.Protester.RestCounter != -67 {
		t.Errorf("RestCounter = %d, want -67", p.Protester.RestCounter)
	}
	if len(q.DrainSounds()) != 0 {
		t.Error("a stun makes no sound")
	}
}

func TestAnnoyPlayer(t *testing.T) {
	w, q := newTestWorld(1)
	pl := w.Player()

	Annoy(pl, domain.ShoutDamage, w)
	if pl.Player.HP != 8 || !pl.Alive {
		t.Errorf("HP = %d alive = %v", pl.Player.HP, pl.Alive)
	}

	Annoy(pl, domain.GiveUpDamage, w)
	if pl.Alive {
		t.Error("player should be dead")
	}
	sounds := q.DrainSounds()
	if len(sounds) != 1 || sounds[0] != enums.SoundPlayerGiveUp {
		t.Errorf("sounds = %v", sounds)
	}
}

func TestAnnoy_IgnoresOtherKinds(t *testing.T) {
	w, _ := newTestWorld(1)
	b := spawnAt(w, domain.NewBoulder(domain.Position{}), 10, 10)
	if Annoy(b, 100, w) {
		t.Error("boulders cannot be annoyed")
	}
}

func TestBribe(t *testing.T) {
	w, q := newTestWorld(2)
	reg := spawnAt(w, domain.NewProtester(enums.EntityRegularProtester, 10), 40, 40)
	hard := spawnAt(w, domain.NewProtester(enums.EntityHardcoreProtester, 10), 20, 40)

	Bribe(reg, w)
	if reg.Protester.State != enums.ProtesterExiting {
		t.Error("regular protester should leave after a bribe")
	}

	Bribe(hard, w)
	if hard.Protester.State != enums.ProtesterActive {
		t.Error("hardcore protester keeps working")
	}
	if hard.Protester.RestCounter != -80 {
		t.Errorf("RestCounter = %d, want -80", hard.Protester.RestCounter)
	}

	if w.Progress.Score != domain.ScoreBribeRegular+domain.ScoreBribeHardcore {
		t.Errorf("score = %d", w.Progress.Score)
	}
	if got := q.DrainSounds(); len(got) != 2 || got[0] != enums.SoundProtesterFoundGold {
		t.Errorf("sounds = %v", got)
	}
}

func TestStunTicks(t *testing.T) {
	tests := []struct{ level, want int }{{0, 100}, {1, 90}, {5, 50}, {9, 50}}
	for _, tt := range tests {
		if got := StunTicks(tt.level); got != tt.want {
			t.Errorf("StunTicks(%d) = %d, want %d", tt.level, got, tt.want)
		}
	}
}
