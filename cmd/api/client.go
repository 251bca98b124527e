package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/luscis/swengine/pkg/libol"
	"github.com/luscis/swengine/pkg/schema"
)

// Client talks json to the switch api.
type Client struct {
	Http *http.Client
}

func NewClient() *Client {
	return &Client{
		Http: &http.Client{Timeout: 10 * time.Second},
	}
}

func (cl *Client) Do(method, url string, in, out interface{}) error {
	var payload io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return err
		}
		payload = bytes.NewReader(data)
	}
	req, err := http.NewRequest(method, url, payload)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	libol.Debug("Client.Do %s %s", method, url)
	resp, err := cl.Http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		msg := schema.Message{}
		if err := json.Unmarshal(body, &msg); err == nil && msg.Message != "" {
			return libol.NewErr("%s: %s", resp.Status, msg.Message)
		}
		return fmt.Errorf("%s %s: %s", method, url, resp.Status)
	}
	if out == nil {
		return nil
	}
	return json.Unmarshal(body, out)
}

func (cl *Client) GetJSON(url string, out interface{}) error {
	return cl.Do("GET", url, nil, out)
}

func (cl *Client) PostJSON(url string, in, out interface{}) error {
	return cl.Do("POST", url, in, out)
}

func (cl *Client) DeleteJSON(url string, out interface{}) error {
	return cl.Do("DELETE", url, nil, out)
}
