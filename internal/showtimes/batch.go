package showtimes

import (
	"context"
	"sync"

	"seances/internal/weekly"
)

// CinemaProgram is the compacted programme of one cinema.
type CinemaProgram struct {
	Cinema   *Cinema
	Programs []MovieProgram
}

// ProgramAll compacts every cinema with at most concurrent workers, per movie
// or per version. Results keep the order of cinemas.
func ProgramAll(ctx context.Context, compactor *weekly.Compactor, cinemas []*Cinema, concurrent int, perVersion bool) ([]CinemaProgram, error) {
	if concurrent <= 0 {
		concurrent = 1
	}
	out := make([]CinemaProgram, len(cinemas))
	sem := make(chan struct{}, concurrent)
	var wg sync.WaitGroup
	for i, c := range cinemas {
		if err := ctx.Err(); err != nil {
			wg.Wait()
			return nil, err
		}
		select {
		case sem <- struct{}{}:
		case <-ctx.Done():
			wg.Wait()
			return nil, ctx.Err()
		}
		wg.Add(1)
		go func(i int, c *Cinema) {
			defer wg.Done()
			defer func() { <-sem }()
			programs := c.ProgramPerMovie
			if perVersion {
				programs = c.ProgramPerVersion
			}
			out[i] = CinemaProgram{Cinema: c, Programs: programs(compactor)}
		}(i, c)
	}
	wg.Wait()
	return out, nil
}
