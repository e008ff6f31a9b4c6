package chunkworld

import "image"

// fourDirections are the four axis-aligned chunk-grid offsets, in the
// same order the corner/edge/center schedule checks them.
var fourDirections = [4]image.Point{{X: 1, Y: 0}, {X: -1, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: -1}}

// StartGeneration returns the initial chunk(s) to schedule for mode:
// a single random chunk for NonDeterministic (generation flood-fills
// outward from it as neighbors finish), or every other corner chunk for
// Deterministic (generation then fills edges, then centers).
func (w *World) StartGeneration(mode GenerationMode) []ChunkJob {
	chunks := w.chunksAcross()

	switch mode {
	case ModeNonDeterministic:
		start := image.Pt(w.Rng.Intn(chunks.X), w.Rng.Intn(chunks.Y))
		return []ChunkJob{{Chunk: start, Type: ChunkType{Kind: NonDeterministic, Center: start}}}

	case ModeDeterministic:
		half := image.Pt((chunks.X+1)/2, (chunks.Y+1)/2)
		var jobs []ChunkJob
		for x := 0; x < half.X; x++ {
			for y := 0; y < half.Y; y++ {
				jobs = append(jobs, ChunkJob{Chunk: image.Pt(x*2, y*2), Type: ChunkType{Kind: Corner}})
			}
		}
		return jobs

	default:
		return nil
	}
}

// ProcessChunk reports which chunks have become ready to schedule now
// that chunk (of the given type) has finished, per the scheduling rule
// for that chunk's kind.
func (w *World) ProcessChunk(chunk image.Point, chunkType ChunkType) []ChunkJob {
	switch chunkType.Kind {
	case NonDeterministic:
		return w.processNonDeterministic(chunk, chunkType.Center)
	case Corner:
		return w.processCorner(chunk)
	case Edge:
		return w.processEdge(chunk)
	case Center:
		return nil
	default:
		return nil
	}
}

// processNonDeterministic flood-fills outward: a neighbor chunk becomes
// ready once it is unscheduled, in bounds, none of its own neighbors is
// scheduled but not yet Done (still in flight, or Failed), and either at
// least two of its own neighbors are already Done or it shares an axis
// with the flood's original center (the "seed-axis" rule that lets
// generation spread along the two axes through the seed chunk without
// waiting on a second done neighbor there). A neighbor skipped because of
// an in-flight chunk is reconsidered when that chunk finishes.
func (w *World) processNonDeterministic(chunk, center image.Point) []ChunkJob {
	chunks := w.chunksAcross()
	var ready []ChunkJob

direction:
	for _, dir := range fourDirections {
		neighbor := chunk.Add(dir)
		if _, scheduled := w.ChunkState[neighbor]; scheduled {
			continue
		}
		if !inChunkBounds(neighbor, chunks) {
			continue
		}

		done := 0
		for _, nd := range fourDirections {
			next := neighbor.Add(nd)
			if state, ok := w.ChunkState[next]; ok {
				if state == ChunkDone {
					done++
				} else {
					continue direction
				}
			}
		}

		if done >= 2 || center.X == neighbor.X || center.Y == neighbor.Y {
			ready = append(ready, ChunkJob{Chunk: neighbor, Type: ChunkType{Kind: NonDeterministic, Center: center}})
		}
	}

	return ready
}

// processCorner schedules the edge chunk between this corner and its
// neighboring corner once that neighbor is done, or immediately if the
// neighboring corner would fall outside the world (there's nothing to
// wait on).
func (w *World) processCorner(chunk image.Point) []ChunkJob {
	chunks := w.chunksAcross()
	var ready []ChunkJob

	for _, dir := range fourDirections {
		nextCorner := chunk.Add(dir.Mul(2))
		edge := chunk.Add(dir)

		if !inChunkBounds(nextCorner, chunks) {
			if !inChunkBounds(edge, chunks) {
				continue
			}
			ready = append(ready, ChunkJob{Chunk: edge, Type: ChunkType{Kind: Edge}})
			continue
		}

		if state, ok := w.ChunkState[nextCorner]; ok && state == ChunkDone {
			ready = append(ready, ChunkJob{Chunk: edge, Type: ChunkType{Kind: Edge}})
		}
	}

	return ready
}

// processEdge schedules the center chunk surrounded by this edge once
// all four of that center's own edge neighbors are either Done or fall
// outside the world (out of bounds counts as satisfied, matching a
// world edge needing no further context on that side).
func (w *World) processEdge(chunk image.Point) []ChunkJob {
	chunks := w.chunksAcross()
	var ready []ChunkJob

	for _, dir := range fourDirections {
		center := chunk.Add(dir)
		if _, scheduled := w.ChunkState[center]; scheduled {
			continue
		}
		if !inChunkBounds(center, chunks) {
			continue
		}

		good := 0
		for _, ed := range fourDirections {
			edge := center.Add(ed)
			if state, ok := w.ChunkState[edge]; ok && state == ChunkDone {
				good++
				continue
			}
			if !inChunkBounds(edge, chunks) {
				good++
			}
		}

		if good == 4 {
			ready = append(ready, ChunkJob{Chunk: center, Type: ChunkType{Kind: Center}})
		}
	}

	return ready
}

func inChunkBounds(p, chunks image.Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < chunks.X && p.Y < chunks.Y
}
