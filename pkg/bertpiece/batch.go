package bertpiece

import "fmt"

// BatchResult holds the flat batch x RowWidth tensors produced by
// EncodeBatch, plus the true (unpadded) length of each row.
type BatchResult struct {
	InputIDs      []int32
	AttentionMask []int32
	TokenTypeIDs  []int32
	Lengths       []int
	RowWidth      int
}

// Row returns views into the i'th row of each tensor.
func (b BatchResult) Row(i int) (inputIDs, attentionMask, tokenTypeIDs []int32) {
	start, end := i*b.RowWidth, (i+1)*b.RowWidth
	return b.InputIDs[start:end], b.AttentionMask[start:end], b.TokenTypeIDs[start:end]
}

// EncodeBatch encodes inputs across workers goroutines, each input landing
// in its own disjoint row of flat batch x RowWidth tensors — no row is ever
// touched by more than one goroutine. maxTokens bounds each row's
// truncation point; padTo, if greater than maxTokens, widens every row to
// padTo. workers <= 0 is treated as 1.
func (t *Tokenizer) EncodeBatch(inputs []string, maxTokens, padTo, workers int) (BatchResult, error) {
	if t == nil || t.vocab == nil {
		return BatchResult{}, ErrVocabularyNotLoaded
	}
	if maxTokens < 2 {
		return BatchResult{}, ErrSinkTooSmall
	}
	if workers <= 0 {
		workers = 1
	}

	rowWidth := maxTokens
	if padTo > rowWidth {
		rowWidth = padTo
	}

	res := BatchResult{
		InputIDs:      make([]int32, len(inputs)*rowWidth),
		AttentionMask: make([]int32, len(inputs)*rowWidth),
		TokenTypeIDs:  make([]int32, len(inputs)*rowWidth),
		Lengths:       make([]int, len(inputs)),
		RowWidth:      rowWidth,
	}

	jobs := make(chan int)
	errs := make(chan error, len(inputs))
	done := make(chan struct{})

	for w := 0; w < workers; w++ {
		go func() {
			scratch := make([]int32, maxTokens)
			for i := range jobs {
				if err := t.encodeRow(res, i, inputs[i], scratch); err != nil {
					errs <- fmt.Errorf("row %d: %w", i, err)
				}
			}
			done <- struct{}{}
		}()
	}

	go func() {
		for i := range inputs {
			jobs <- i
		}
		close(jobs)
	}()

	for w := 0; w < workers; w++ {
		<-done
	}
	close(errs)

	if err, ok := <-errs; ok {
		return BatchResult{}, err
	}
	return res, nil
}

// encodeRow encodes one input into the i'th row of res, using scratch as
// the truncation-bound working buffer before padding out to res.RowWidth.
func (t *Tokenizer) encodeRow(res BatchResult, i int, input string, scratch []int32) error {
	n, err := t.encodeCore(input, scratch)
	if err != nil {
		return err
	}

	ids, mask, _ := res.Row(i)
	copy(ids, scratch[:n])
	for k := n; k < res.RowWidth; k++ {
		ids[k] = t.vocab.Pad.ID
	}
	for k := 0; k < n; k++ {
		mask[k] = 1
	}
	res.Lengths[i] = n
	return nil
}
