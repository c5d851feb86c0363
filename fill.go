package jigsaw

import "image"

// compactThreshold is the number of consumed queue entries after which the
// fill queue is shifted down to reuse its backing array.
const compactThreshold = 4096

// Fill grows a region from seed over background pixels, 4-connected, and
// claims every pixel it takes.
//
// The traversal is breadth-first over an explicit queue. Neighbors are
// enqueued without checks; bounds and the still-background test happen on
// dequeue, which also discards entries queued twice. A pixel is claimed at
// most once, so regions from successive fills on the same mask are disjoint.
//
// ok is false when the seed is outside the mask or not background, for
// example when it lands on a cut line. The returned region then has no
// points.
func (m *Mask) Fill(seed image.Point) (r Region, ok bool) {
	r.Seed = seed
	if !m.IsBackground(seed.X, seed.Y) {
		return r, false
	}

	queue := make([]image.Point, 1, 64)
	queue[0] = seed
	head := 0

	for head < len(queue) {
		p := queue[head]
		head++

		if !m.IsBackground(p.X, p.Y) {
			continue
		}
		m.claimPixel(p.X, p.Y)
		r.Points = append(r.Points, p)

		queue = append(queue,
			image.Pt(p.X-1, p.Y),
			image.Pt(p.X+1, p.Y),
			image.Pt(p.X, p.Y-1),
			image.Pt(p.X, p.Y+1),
		)

		if head >= compactThreshold && head*2 >= len(queue) {
			n := copy(queue, queue[head:])
			queue = queue[:n]
			head = 0
		}
	}

	return r, true
}
