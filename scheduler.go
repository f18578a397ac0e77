package blosc

import (
	"sync"
	"sync/atomic"
)

// turnstile is the ordered-admission primitive behind the parallel
// compression scheduler's shared write cursor (§4.9, §5): goroutines may
// finish compressing their blocks in any order, but each one's admit
// call blocks until every earlier block index has already been admitted,
// so bstarts[] is populated and the output cursor advances strictly in
// block-index order regardless of how the goroutines were scheduled.
type turnstile struct {
	mu   sync.Mutex
	cond *sync.Cond
	next int
}

func newTurnstile() *turnstile {
	t := &turnstile{}
	t.cond = sync.NewCond(&t.mu)
	return t
}

// admit blocks until index i is next in line, then runs fn while holding
// the turnstile's lock (fn should be short: read/advance the cursor,
// write one bstarts entry), then admits i+1.
func (t *turnstile) admit(i int, fn func()) {
	t.mu.Lock()
	for t.next != i {
		t.cond.Wait()
	}
	fn()
	t.next++
	t.cond.Broadcast()
	t.mu.Unlock()
}

// giveup is the sticky scheduler signal from §4.9/§7: once triggered, it
// stays triggered for the rest of the call. A nil err with triggered
// true means "incompressible at this budget" (BC/BD returned 0); a
// non-nil err means a hard backend/corruption error.
type giveup struct {
	mu        sync.Mutex
	triggered bool
	err       error
}

func (g *giveup) trigger(err error) {
	g.mu.Lock()
	if !g.triggered {
		g.triggered = true
		g.err = err
	}
	g.mu.Unlock()
}

func (g *giveup) state() (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.triggered, g.err
}

// blockPlan is the read-only, per-call geometry every worker needs.
type blockPlan struct {
	backend   *backendDescriptor
	clevel    int
	shuffleOn bool
	typesize  int
	blocksize int
	leftover  int
	blocks    int
}

func (p blockPlan) blockExtent(i int) (l int, leftoverBlock bool) {
	if i == p.blocks-1 && p.leftover > 0 {
		return p.leftover, true
	}
	return p.blocksize, false
}

// stagingSize bounds the scratch a single compressed block can occupy
// before it is known where in the shared output it will land.
func (p blockPlan) stagingSize() int {
	return p.blocksize + p.backend.maxout(p.blocksize) + 4*MaxSplits + 64
}

// runCompressScheduler drives BC across every block of src, serially if
// threads<=1 or there is only one block, otherwise across a bounded pool
// of goroutines coordinated by a turnstile. header must already have its
// fixed prefix and bstarts table reserved; on success header.SetCBytes
// is NOT called here -- the caller patches it once it knows the final
// size. Returns the number of payload bytes written (giveup==0 case
// signaled via ok=false, err=nil).
func runCompressScheduler(p blockPlan, src []byte, header HeaderView, threads int) (written int, ok bool, err error) {
	payload := header.Payload()
	if threads <= 1 || p.blocks <= 1 {
		return compressSerial(p, src, header, payload)
	}
	return compressParallel(p, src, header, payload, threads)
}

func compressSerial(p blockPlan, src []byte, header HeaderView, payload []byte) (int, bool, error) {
	tmp := make([]byte, p.blocksize)
	cursor := 0
	for i := 0; i < p.blocks; i++ {
		l, leftoverBlock := p.blockExtent(i)
		in := src[i*p.blocksize : i*p.blocksize+l]

		header.SetBStarts(i, int32(cursor))
		budget := payload[cursor:]
		c, err := blockCompress(p.backend, p.clevel, p.shuffleOn, p.typesize, in, leftoverBlock, budget, tmp)
		if err != nil {
			return 0, false, err
		}
		if c == 0 {
			return 0, false, nil
		}
		cursor += c
	}
	return cursor, true, nil
}

func compressParallel(p blockPlan, src []byte, header HeaderView, payload []byte, threads int) (int, bool, error) {
	if threads > p.blocks {
		threads = p.blocks
	}

	indices := make(chan int, p.blocks)
	for i := 0; i < p.blocks; i++ {
		indices <- i
	}
	close(indices)

	ts := newTurnstile()
	gv := &giveup{}
	cursor := 0

	var wg sync.WaitGroup
	for w := 0; w < threads; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tmp := make([]byte, p.blocksize)
			staging := make([]byte, p.stagingSize())

			for i := range indices {
				// A block whose giveup was already triggered before
				// we even started compressing it still must pass
				// through the turnstile: every index must be admitted
				// in order so later indices waiting on it are never
				// stranded, even once the whole call is doomed.
				if stopped, _ := gv.state(); stopped {
					ts.admit(i, func() {})
					continue
				}

				l, leftoverBlock := p.blockExtent(i)
				in := src[i*p.blocksize : i*p.blocksize+l]

				c, err := blockCompress(p.backend, p.clevel, p.shuffleOn, p.typesize, in, leftoverBlock, staging, tmp)
				if err != nil {
					ts.admit(i, func() { gv.trigger(err) })
					continue
				}

				var pos int
				committed := false
				ts.admit(i, func() {
					if stopped, _ := gv.state(); stopped {
						return
					}
					if c == 0 {
						gv.trigger(nil)
						return
					}
					if cursor+c > len(payload) {
						// Same outcome as the serial path's BC returning 0:
						// incompressible at this budget.
						gv.trigger(nil)
						return
					}
					pos = cursor
					cursor += c
					header.SetBStarts(i, int32(pos))
					committed = true
				})
				if committed {
					copy(payload[pos:pos+c], staging[:c])
				}
			}
		}()
	}
	wg.Wait()

	if triggered, err := gv.state(); triggered {
		return 0, false, err
	}
	return cursor, true, nil
}

// runDecompressScheduler drives BD across every block described by
// header, writing into dest. Decompression has no ordering requirement
// (§4.9/§5): each block's location is already pinned by bstarts, so
// workers run fully unordered and only a shared giveup flag and an
// atomic byte counter coordinate them.
func runDecompressScheduler(backend *backendDescriptor, header HeaderView, dest []byte, threads int) (int, error) {
	p := blockPlan{
		backend:   backend,
		shuffleOn: header.HasShuffle(),
		typesize:  int(header.TypeSize()),
		blocksize: int(header.BlockSize()),
		leftover:  header.Leftover(),
		blocks:    header.NumBlocks(),
	}
	if p.blocks == 0 {
		return 0, nil
	}
	if threads <= 1 || p.blocks <= 1 {
		return decompressSerial(p, header, dest)
	}
	return decompressParallel(p, header, dest, threads)
}

func decompressSerial(p blockPlan, header HeaderView, dest []byte) (int, error) {
	payload := header.Payload()
	tmp := make([]byte, p.blocksize)
	tmp2 := alignedBuffer(p.blocksize + p.typesize*4)

	total := 0
	for i := 0; i < p.blocks; i++ {
		l, leftoverBlock := p.blockExtent(i)
		start, end, err := blockSpan(header, i, len(payload))
		if err != nil {
			return 0, err
		}
		out := dest[i*p.blocksize : i*p.blocksize+l]
		n, err := blockDecompress(p.backend, p.shuffleOn, p.typesize, payload[start:end], l, leftoverBlock, out, tmp, tmp2)
		if err != nil {
			return 0, err
		}
		total += n
	}
	return total, nil
}

func decompressParallel(p blockPlan, header HeaderView, dest []byte, threads int) (int, error) {
	if threads > p.blocks {
		threads = p.blocks
	}
	payload := header.Payload()

	indices := make(chan int, p.blocks)
	for i := 0; i < p.blocks; i++ {
		indices <- i
	}
	close(indices)

	gv := &giveup{}
	var total int64

	var wg sync.WaitGroup
	for w := 0; w < threads; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tmp := make([]byte, p.blocksize)
			tmp2 := alignedBuffer(p.blocksize + p.typesize*4)

			for i := range indices {
				if stopped, _ := gv.state(); stopped {
					continue
				}
				l, leftoverBlock := p.blockExtent(i)
				start, end, err := blockSpan(header, i, len(payload))
				if err != nil {
					gv.trigger(err)
					continue
				}
				out := dest[i*p.blocksize : i*p.blocksize+l]
				n, err := blockDecompress(p.backend, p.shuffleOn, p.typesize, payload[start:end], l, leftoverBlock, out, tmp, tmp2)
				if err != nil {
					gv.trigger(err)
					continue
				}
				atomic.AddInt64(&total, int64(n))
			}
		}()
	}
	wg.Wait()

	if triggered, err := gv.state(); triggered {
		return 0, err
	}
	return int(total), nil
}

// blockSpan returns the [start,end) byte range of block i within
// payload, using bstarts[i] and either bstarts[i+1] or len(payload) (for
// the last block) as the bound. Returns ErrHeaderCorrupt if either
// offset is out of range.
func blockSpan(header HeaderView, i, payloadLen int) (start, end int, err error) {
	start = int(header.BStarts(i))
	if start < 0 || start > payloadLen {
		return 0, 0, wrapf(ErrHeaderCorrupt, "bstarts[%d]=%d out of range", i, start)
	}
	if i+1 < header.NumBlocks() {
		end = int(header.BStarts(i + 1))
	} else {
		end = payloadLen
	}
	if end < start || end > payloadLen {
		return 0, 0, wrapf(ErrHeaderCorrupt, "bstarts[%d] end %d out of range", i, end)
	}
	return start, end, nil
}
