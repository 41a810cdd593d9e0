package systems

import (
	"tunnel-server/internal/core/types/enums"
	"tunnel-server/internal/domain"
	"tunnel-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

// Annoy наносит урон игроку или протестующему. Остальным все равно.
// Возвращает true, если урон был принят.
func Annoy(target *domain.Entity, amount int, w *domain.World) bool {
	if !target.Alive {
		return false
	}
	switch {
	case target.Kind == enums.EntityPlayer:
		return annoyPlayer(target, amount, w)
	case target.Kind.IsProtester():
		return annoyProtester(target, amount, w)
	}
	return false
}

func annoyPlayer(p *domain.Entity, amount int, w *domain.World) bool {
	comp := p.Player
	comp.HP -= amount
	if comp.HP <= 0 {
		p.Kill()
		w.PlaySound(enums.SoundPlayerGiveUp)
		logger.Log.WithFields(logrus.Fields{
			"component": "combat_system",
			"damage":    amount,
			"level":     w.Level,
		}).Info("Player gave up")
	}
	return true
}

func annoyProtester(p *domain.Entity, amount int, w *domain.World) bool {
	comp := p.Protester
	// Уходящие не реагируют
	if comp.State != enums.ProtesterActive {
		return false
	}

	comp.HP -= amount
	if comp.HP > 0 {
		stun(p, w)
		return true
	}

	comp.State = enums.ProtesterExiting
	w.PlaySound(enums.SoundProtesterGiveUp)

	points := 0
	switch amount {
	case domain.SquirtDamage:
		points = domain.ScoreSquirtRegular
		if p.IsHardcore() {
			points = domain.ScoreSquirtHardcore
		}
	case domain.BoulderDamage:
		points = domain.ScoreBoulderKill
	}
	w.AddScore(points)

	logger.Log.WithFields(logrus.Fields{
		"component": "combat_system",
		"entity_id": p.ID,
		"damage":    amount,
		"score":     points,
	}).Debug("Protester gives up")
	return true
}

// Bribe — протестующий нашел брошенное золото.
func Bribe(p *domain.Entity, w *domain.World) {
	if !p.Alive || p.Protester == nil {
		return
	}
	w.PlaySound(enums.SoundProtesterFoundGold)

	if p.IsHardcore() {
		w.AddScore(domain.ScoreBribeHardcore)
		stun(p, w)
		return
	}
	w.AddScore(domain.ScoreBribeRegular)
	p.Protester.State = enums.ProtesterExiting
}

// StunTicks — сколько тиков протестующий стоит после урона или подкупа.
func StunTicks(level int) int {
	return max(50, 100-10*level)
}

// stun отодвигает счетчик отдыха так, чтобы до порога оставалось ровно StunTicks тиков.
func stun(p *domain.Entity, w *domain.World) {
	p.Protester.RestCounter = RestTicks(w.Level) - StunTicks(w.Level)
}
