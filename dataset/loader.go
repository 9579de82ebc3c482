package dataset

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/sync/errgroup"
)

// ErrEmptySource reports a source without a header row.
var ErrEmptySource = errors.New("source has no header row")

// Loader retrieves delimited sources over http(s) or from the local
// filesystem. A failed load is terminal for the call; the transport
// retries below are the only retry there is.
type Loader struct {
	client *resty.Client
}

func NewLoader() *Loader {
	client := resty.New()
	client.SetTimeout(30 * time.Second)
	client.SetRetryCount(2)
	client.SetRetryWaitTime(time.Second)
	return &Loader{
		client: client,
	}
}

// Load fetches and parses one source. The location is a URL or a plain
// file path.
func (l *Loader) Load(ctx context.Context, location string) (Frame, error) {
	rc, err := l.open(ctx, location)
	if err != nil {
		return Frame{}, fmt.Errorf("load %s: %w", location, err)
	}
	defer rc.Close()

	f, err := Decode(rc)
	if err != nil {
		return Frame{}, fmt.Errorf("load %s: %w", location, err)
	}
	return f, nil
}

// LoadAll fetches several sources concurrently, preserving the order of
// the locations in the result.
func (l *Loader) LoadAll(ctx context.Context, locations ...string) ([]Frame, error) {
	grp, ctx := errgroup.WithContext(ctx)
	all := make([]Frame, len(locations))
	for i, loc := range locations {
		i, loc := i, loc
		grp.Go(func() error {
			f, err := l.Load(ctx, loc)
			if err != nil {
				return err
			}
			all[i] = f
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}
	return all, nil
}

func (l *Loader) open(ctx context.Context, location string) (io.ReadCloser, error) {
	u, err := url.Parse(location)
	if err != nil {
		return nil, err
	}
	switch u.Scheme {
	case "http", "https":
		res, err := l.client.R().SetContext(ctx).Get(u.String())
		if err != nil {
			return nil, err
		}
		if !res.IsSuccess() {
			return nil, fmt.Errorf("%s: unexpected status %s", u.String(), res.Status())
		}
		return io.NopCloser(bytes.NewReader(res.Body())), nil
	case "", "file":
		return os.Open(u.Path)
	default:
		return nil, fmt.Errorf("%s: unsupported scheme", u.Scheme)
	}
}

// Decode parses comma separated text with a header row, keeping column
// order and row order.
func Decode(r io.Reader) (Frame, error) {
	rs := csv.NewReader(r)
	header, err := rs.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return Frame{}, ErrEmptySource
		}
		return Frame{}, err
	}
	f := Frame{
		Columns: header,
	}
	for {
		row, err := rs.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return Frame{}, err
		}
		rec := make(Record, len(header))
		for i, name := range header {
			if i < len(row) {
				rec[name] = row[i]
			}
		}
		f.Records = append(f.Records, rec)
	}
	return f, nil
}
