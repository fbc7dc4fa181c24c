package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"

	"github.com/ethereum/go-ethereum/common"
)

type Response struct {
	ErrorMessage string          `json:"error_message,omitempty"`
	Result       json.RawMessage `json:"result"`
}

type AddressResponse struct {
	ErrorMessage string `json:"error_message,omitempty"`
	Result       struct {
		Address string `json:"address"`
	} `json:"result"`
}

func readResponse(resp *http.Response, v interface{}) error {
	defer resp.Body.Close()
	responseBody, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read body: %w", err)
	}
	if err = json.Unmarshal(responseBody, v); err != nil {
		return fmt.Errorf("failed to unmarshal response (status %d): %v", resp.StatusCode, err)
	}
	return nil
}

func rawPostRequest(url string, contentType string, data []byte) (*Response, error) {
	resp, err := http.Post(url, contentType, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to make HTTP request: %w", err)
	}
	var response Response
	if err = readResponse(resp, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// postRequest sends payload as JSON and fails on any gateway error message.
func postRequest(host, path string, payload interface{}) (json.RawMessage, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}
	resp, err := rawPostRequest(fmt.Sprintf("http://%s%s", host, path), "application/json", data)
	if err != nil {
		return nil, err
	}
	if resp.ErrorMessage != "" {
		return nil, fmt.Errorf("gateway error: %s", resp.ErrorMessage)
	}
	return resp.Result, nil
}

func getFactoryAddressRequest(host string) (common.Address, error) {
	resp, err := http.Get(fmt.Sprintf("http://%s/contract-address", host))
	if err != nil {
		return common.Address{}, fmt.Errorf("failed to get contract address: %w", err)
	}
	var response AddressResponse
	if err = readResponse(resp, &response); err != nil {
		return common.Address{}, err
	}
	if response.ErrorMessage != "" {
		return common.Address{}, fmt.Errorf("failed to get contract address: %s", response.ErrorMessage)
	}
	if !common.IsHexAddress(response.Result.Address) {
		return common.Address{}, fmt.Errorf("gateway returned invalid contract address %q", response.Result.Address)
	}
	return common.HexToAddress(response.Result.Address), nil
}
