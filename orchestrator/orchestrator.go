package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"image"

	"github.com/arcweave/latticewfc/backend"
	"github.com/arcweave/latticewfc/bitset"
	"github.com/arcweave/latticewfc/chunkworld"
	"github.com/arcweave/latticewfc/solver"
	"github.com/arcweave/latticewfc/tileset"
	"github.com/arcweave/latticewfc/wfcgraph"
	"github.com/arcweave/latticewfc/wfclog"
	"github.com/arcweave/latticewfc/wfctask"
)

// taskMetadata is round-tripped through a backend.Backend on every
// chunked task so handle_output (here, the GenerateWorld loop) knows
// which chunk came back.
type taskMetadata struct {
	chunk     image.Point
	chunkType chunkworld.ChunkType
}

// GenerateWorld drives a full chunked generation to completion: builds a
// chunkworld.World, queues its initial chunks on be, then repeatedly
// drains completed chunks, merges them, and queues whatever
// World.ProcessChunk reports ready, until nothing is outstanding.
//
// On a chunk's solver failure, generation stops scheduling new work, the
// chunk is marked Failed, and the already in-flight chunks are drained
// before GenerateWorld returns the partial World alongside the first
// error encountered. Cancelling ctx stops GenerateWorld between chunk
// completions — it cannot interrupt a chunk already mid-solve on the
// backend, matching the core solver having no suspension points.
func GenerateWorld(
	ctx context.Context,
	ts tileset.Tileset,
	be backend.Backend,
	grid wfcgraph.GridSettings2D,
	seed uint64,
	mode chunkworld.GenerationMode,
	chunk chunkworld.ChunkSettings,
	settings wfctask.Settings,
	logger wfclog.Logger,
) (*chunkworld.World, error) {
	world, err := chunkworld.NewWorld(grid.Width, grid.Height, ts, seed, chunk, settings)
	if err != nil {
		return nil, err
	}

	queue := func(jobs []chunkworld.ChunkJob) error {
		for _, job := range jobs {
			world.ChunkState[job.Chunk] = chunkworld.ChunkScheduled
			graph := world.ExtractChunk(job.Chunk)
			taskSeed := seed + uint64(job.Chunk.X)*1000 + uint64(job.Chunk.Y)
			task := wfctask.New(graph, ts, taskSeed,
				wfctask.WithMetadata(taskMetadata{chunk: job.Chunk, chunkType: job.Type}),
				wfctask.WithSettings(settings),
			)
			world.Outstanding++
			if err := be.QueueTask(task); err != nil {
				return fmt.Errorf("orchestrator: queue chunk %v: %w", job.Chunk, err)
			}
		}
		return nil
	}

	if err := queue(world.StartGeneration(mode)); err != nil {
		return world, err
	}

	var firstErr error
	for world.Outstanding > 0 {
		task, solveErr, fatalErr := waitForOutput(ctx, be)
		if fatalErr != nil {
			return world, fatalErr
		}

		world.Outstanding--

		md, ok := task.Metadata.(taskMetadata)
		if !ok {
			return world, ErrUnexpectedMetadata
		}

		world.MergeChunk(md.chunk, task.Graph)

		if solveErr != nil {
			wfclog.Errorf(logger, "chunk %v failed: %v", md.chunk, solveErr)
			world.ChunkState[md.chunk] = chunkworld.ChunkFailed
			if firstErr == nil {
				firstErr = fmt.Errorf("orchestrator: chunk %v: %w", md.chunk, solveErr)
			}
			continue
		}

		if firstErr != nil {
			// a sibling chunk already failed; keep draining in-flight
			// work but stop scheduling anything new.
			continue
		}

		world.ChunkState[md.chunk] = chunkworld.ChunkDone
		if err := queue(world.ProcessChunk(md.chunk, md.chunkType)); err != nil {
			return world, err
		}
	}

	return world, firstErr
}

// waitForOutput blocks on be.WaitForOutput while remaining responsive to
// ctx cancellation, since Backend itself has no context-aware variant.
// It returns three results: the completed task and its solve error (the
// normal per-chunk outcome), or a non-nil fatal error (ctx cancellation
// or the backend closing early) that GenerateWorld must abort on.
func waitForOutput(ctx context.Context, be backend.Backend) (task *wfctask.Task, solveErr, fatalErr error) {
	type outcome struct {
		task *wfctask.Task
		err  error
	}
	done := make(chan outcome, 1)
	go func() {
		task, err := be.WaitForOutput()
		done <- outcome{task: task, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, nil, ctx.Err()
	case o := <-done:
		if errors.Is(o.err, backend.ErrBackendClosed) {
			return nil, nil, fmt.Errorf("orchestrator: %w", o.err)
		}
		return o.task, o.err, nil
	}
}

// GenerateSingleShot runs one task straight through solver.Run over a
// single regular 2D grid covering the whole area, with no backend or
// chunking involved. logger may be nil.
func GenerateSingleShot(ts tileset.Tileset, grid wfcgraph.GridSettings2D, seed uint64, settings wfctask.Settings, logger wfclog.Logger) (wfcgraph.Graph[*bitset.Set], error) {
	graph, err := wfcgraph.NewRegularGrid2D(grid, func(x, y int) *bitset.Set {
		return bitset.Filled(ts.TileCount())
	})
	if err != nil {
		return wfcgraph.Graph[*bitset.Set]{}, err
	}

	task := wfctask.New(graph, ts, seed, wfctask.WithSettings(settings))
	if err := solver.Run(task, nil, logger); err != nil {
		return task.Graph, err
	}
	return task.Graph, nil
}
