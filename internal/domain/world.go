package domain

import (
	"math/rand"

	"tunnel-server/internal/core/types"
	"tunnel-server/internal/core/types/enums"
)

type slot struct {
	gen    uint16
	entity *Entity
}

// World — арена одного уровня: грунт, сущности и общие ресурсы тика.
// Сущности живут в таблице слотов; дескриптор EntityID содержит поколение слота,
// поэтому ссылка на убранную сущность резолвится в nil.
type World struct {
	Terrain Terrain `json:"-"`

	Level      int `json:"level"`
	GlobalTick int `json:"globalTick"`

	// BarrelsRequired — сколько бочек реально размещено на уровне.
	BarrelsRequired int `json:"barrelsRequired"`

	Rng      *rand.Rand `json:"-"`
	Audio    AudioSink  `json:"-"`
	Progress *Progress  `json:"-"`

	slots  []slot
	free   []uint32
	order  []types.EntityID // порядок вставки = порядок тика
	player types.EntityID
}

// NewWorld создает пустой уровень без грунта.
func NewWorld(level int, rng *rand.Rand, audio AudioSink, progress *Progress) *World {
	if audio == nil {
		audio = NopAudio{}
	}
	if progress == nil {
		progress = NewProgress()
	}
	return &World{
		Level:    level,
		Rng:      rng,
		Audio:    audio,
		Progress: progress,
	}
}

// Spawn добавляет сущность в конец порядка тика и выдает ей дескриптор.
func (w *World) Spawn(e *Entity) types.EntityID {
	var idx uint32
	if n := len(w.free); n > 0 {
		idx = w.free[n-1]
		w.free = w.free[:n-1]
	} else {
		idx = uint32(len(w.slots))
		w.slots = append(w.slots, slot{})
	}

	s := &w.slots[idx]
	s.entity = e
	e.ID = types.PackEntityID(e.Kind, s.gen, idx)
	w.order = append(w.order, e.ID)

	if e.Kind == enums.EntityPlayer {
		w.player = e.ID
	}
	return e.ID
}

// Get резолвит дескриптор. Устаревшие дескрипторы дают nil.
func (w *World) Get(id types.EntityID) *Entity {
	idx := id.Index()
	if id.IsNil() || int(idx) >= len(w.slots) {
		return nil
	}
	s := w.slots[idx]
	if s.gen != id.Generation() || s.entity == nil {
		return nil
	}
	return s.entity
}

// Player возвращает игрока (nil, если его еще нет или он уже убран).
func (w *World) Player() *Entity {
	return w.Get(w.player)
}

// Len — число сущностей в порядке тика (включая мертвых до Purge).
func (w *World) Len() int {
	return len(w.order)
}

// At возвращает i-ю сущность в порядке вставки.
func (w *World) At(i int) *Entity {
	return w.Get(w.order[i])
}

// Entities — снимок текущего порядка (для снапшотов и отладки).
func (w *World) Entities() []*Entity {
	out := make([]*Entity, 0, len(w.order))
	for _, id := range w.order {
		if e := w.Get(id); e != nil {
			out = append(out, e)
		}
	}
	return out
}

// Purge убирает мертвых из порядка тика и освобождает их слоты.
// Вызывается только контроллером в конце тика.
func (w *World) Purge() int {
	kept := w.order[:0]
	removed := 0
	for _, id := range w.order {
		e := w.Get(id)
		if e != nil && e.Alive {
			kept = append(kept, id)
			continue
		}
		idx := id.Index()
		w.slots[idx].entity = nil
		w.slots[idx].gen++
		w.free = append(w.free, idx)
		removed++
	}
	// Хвост обнуляем, чтобы не держать старые дескрипторы
	for i := len(kept); i < len(w.order); i++ {
		w.order[i] = types.NilEntityID
	}
	w.order = kept
	return removed
}

// CountKind — сколько живых сущностей данного вида.
func (w *World) CountKind(kind enums.EntityKind) int {
	n := 0
	for _, id := range w.order {
		if e := w.Get(id); e != nil && e.Alive && e.Kind == kind {
			n++
		}
	}
	return n
}

// CountProtesters — оба подвида вместе.
func (w *World) CountProtesters() int {
	return w.CountKind(enums.EntityRegularProtester) + w.CountKind(enums.EntityHardcoreProtester)
}

// PlaySound — сокращение для поведения сущностей.
func (w *World) PlaySound(s enums.Sound) {
	w.Audio.PlaySound(s)
}

// AddScore начисляет очки в общий прогресс игры.
func (w *World) AddScore(points int) {
	w.Progress.Score += points
}
