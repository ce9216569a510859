package ncov

//go:generate mockgen -destination=../mocks/mock_ncov.go -package=mocks github.com/bitmark-inc/covid-dashboard/external/ncov Area

import (
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/url"

	log "github.com/sirupsen/logrus"

	"github.com/bitmark-inc/covid-dashboard/schema"
)

const (
	logPrefix  = "ncov"
	defaultURL = "https://lab.isaaclin.cn/nCoV/api/area"
)

var (
	ErrResponseStatus = fmt.Errorf("response status not ok")
	ErrUnsuccessful   = fmt.Errorf("area api reports failure")
)

// Area - nCoV area api, one record per province of the domestic region and
// one per foreign country
type Area interface {
	Latest(context.Context) ([]schema.RegionRecord, error)
	History(context.Context) ([]schema.RegionRecord, error)
}

type area struct {
	client *http.Client
	url    string
}

// Latest - the newest snapshot of every region
func (a area) Latest(ctx context.Context) ([]schema.RegionRecord, error) {
	return a.get(ctx, a.url)
}

// History - every snapshot of every region
func (a area) History(ctx context.Context) ([]schema.RegionRecord, error) {
	u, err := url.Parse(a.url)
	if nil != err {
		return nil, err
	}

	q := u.Query()
	q.Set("latest", "0")
	u.RawQuery = q.Encode()

	return a.get(ctx, u.String())
}

func (a area) get(ctx context.Context, u string) ([]schema.RegionRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if nil != err {
		return nil, err
	}

	resp, err := a.client.Do(req)
	if nil != err {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %d", ErrResponseStatus, resp.StatusCode)
	}

	d, err := ioutil.ReadAll(resp.Body)
	if nil != err {
		return nil, err
	}

	var r schema.AreaResponse
	if err := json.Unmarshal(d, &r); nil != err {
		return nil, err
	}

	if !r.Success && len(r.Results) == 0 {
		return nil, ErrUnsuccessful
	}

	log.WithFields(log.Fields{"prefix": logPrefix, "url": u, "records": len(r.Results)}).Debug("area data")

	return r.Results, nil
}

// New - return an area client, url defaults to the public endpoint
func New(client *http.Client, url string) Area {
	u := defaultURL
	if url != "" {
		u = url
	}

	if client == nil {
		client = http.DefaultClient
	}

	return &area{
		client: client,
		url:    u,
	}
}
