package worldometer

//go:generate mockgen -destination=../mocks/mock_worldometer.go -package=mocks github.com/bitmark-inc/covid-dashboard/external/worldometer Snapshot

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/bitmark-inc/covid-dashboard/schema"
)

const (
	logPrefix       = "worldometer"
	defaultLocation = "./assets/GlobalCasesToday.json"
)

var ErrResponseStatus = fmt.Errorf("response status not ok")

// Snapshot - the per-country case snapshot scraped from worldometers
type Snapshot interface {
	Countries(context.Context) ([]schema.CountryCases, error)
}

type snapshot struct {
	client   *http.Client
	location string
}

// Countries - read the snapshot from its url or file
func (s snapshot) Countries(ctx context.Context) ([]schema.CountryCases, error) {
	body, err := s.open(ctx)
	if nil != err {
		return nil, err
	}
	defer body.Close()

	d, err := ioutil.ReadAll(body)
	if nil != err {
		return nil, err
	}

	if err := ctx.Err(); nil != err {
		return nil, err
	}

	var r schema.CountriesResponse
	if err := json.Unmarshal(d, &r); nil != err {
		return nil, err
	}

	log.WithFields(log.Fields{"prefix": logPrefix, "location": s.location, "countries": len(r.Countries)}).Debug("country snapshot")

	return r.Countries, nil
}

func (s snapshot) open(ctx context.Context) (io.ReadCloser, error) {
	if !strings.HasPrefix(s.location, "http://") && !strings.HasPrefix(s.location, "https://") {
		return os.Open(strings.TrimPrefix(s.location, "file://"))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.location, nil)
	if nil != err {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if nil != err {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("%w: %d", ErrResponseStatus, resp.StatusCode)
	}

	return resp.Body, nil
}

// New - return a snapshot reader for an http(s) url or a local file
func New(client *http.Client, location string) Snapshot {
	l := defaultLocation
	if location != "" {
		l = location
	}

	if client == nil {
		client = http.DefaultClient
	}

	return &snapshot{
		client:   client,
		location: l,
	}
}
