package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/deppfellow/person-service/internal/config"
	"github.com/deppfellow/person-service/internal/errs"
	"github.com/deppfellow/person-service/internal/model"
	"github.com/deppfellow/person-service/internal/repository"
	"github.com/deppfellow/person-service/internal/repository/repotest"
	"github.com/deppfellow/person-service/internal/response"
	"github.com/deppfellow/person-service/internal/server"
	"github.com/deppfellow/person-service/internal/service"
	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandlers(t *testing.T, repo *repotest.FakePersonRepository) *Handlers {
	t.Helper()

	cfg := config.DefaultConfig()
	cfg.Store.TableName = "persons"
	s := &server.Server{Config: cfg}

	services, err := service.NewService(s, &repository.Repositories{Person: repo})
	require.NoError(t, err)

	return NewHandlers(s, services)
}

func addPerson(t *testing.T, repo *repotest.FakePersonRepository, body string) (*response.Response, *response.Envelope) {
	t.Helper()

	resp := newTestHandlers(t, repo).Person.AddPerson()(context.Background(), []byte(body))
	require.NotNil(t, resp)
	assert.Equal(t, response.ContentTypeJSON, resp.Headers[response.ContentTypeHeader])

	envelope, err := response.Decode(resp.Body)
	require.NoError(t, err)

	// Exactly one of data/errors is non-null and success mirrors the status.
	assert.Equal(t, response.IsSuccess(resp.StatusCode), envelope.Success)
	assert.True(t, (string(envelope.Data) == "null") != (string(envelope.Errors) == "null"))

	return resp, envelope
}

func TestAddPersonSuccess(t *testing.T) {
	repo := repotest.NewFakePersonRepository()

	resp, envelope := addPerson(t, repo, `{"firstName":"Jane","lastName":"Doe","age":30}`)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, envelope.Success)

	var data struct {
		Person model.Person `json:"person"`
	}
	require.NoError(t, json.Unmarshal(envelope.Data, &data))

	assert.Equal(t, "Jane", data.Person.FirstName)
	assert.Equal(t, "Doe", data.Person.LastName)
	assert.Equal(t, 30, data.Person.Age)
	_, err := ulid.ParseStrict(data.Person.ID)
	assert.NoError(t, err)

	puts := repo.Puts()
	require.Len(t, puts, 1)
	assert.Equal(t, data.Person, puts[0])
}

func TestAddPersonResponseShape(t *testing.T) {
	repo := repotest.NewFakePersonRepository()

	resp, _ := addPerson(t, repo, `{"firstName":"Jane","lastName":"Doe","age":30}`)

	id := repo.Puts()[0].ID
	assert.JSONEq(t,
		`{"success":true,"errors":null,"data":{"person":{"id":"`+id+`","first_name":"Jane","last_name":"Doe","age":30}}}`,
		string(resp.Body))
}

func TestAddPersonDistinctIDs(t *testing.T) {
	repo := repotest.NewFakePersonRepository()
	endpoint := newTestHandlers(t, repo).Person.AddPerson()

	for i := 0; i < 3; i++ {
		resp := endpoint(context.Background(), []byte(`{"firstName":"Jane","lastName":"Doe","age":30}`))
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}

	puts := repo.Puts()
	require.Len(t, puts, 3)
	assert.NotEqual(t, puts[0].ID, puts[1].ID)
	assert.NotEqual(t, puts[1].ID, puts[2].ID)
}

func TestAddPersonEmptyFirstName(t *testing.T) {
	repo := repotest.NewFakePersonRepository()

	resp, envelope := addPerson(t, repo, `{"firstName":"","lastName":"Doe","age":30}`)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var fieldErrors map[string][]string
	require.NoError(t, json.Unmarshal(envelope.Errors, &fieldErrors))
	assert.Len(t, fieldErrors, 1)
	assert.Contains(t, fieldErrors, "firstName")
	assert.Contains(t, fieldErrors["firstName"][0], "too short")

	assert.Empty(t, repo.Puts())
}

func TestAddPersonAgeZero(t *testing.T) {
	repo := repotest.NewFakePersonRepository()

	resp, envelope := addPerson(t, repo, `{"firstName":"Jane","lastName":"Doe","age":0}`)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var fieldErrors map[string][]string
	require.NoError(t, json.Unmarshal(envelope.Errors, &fieldErrors))
	require.Contains(t, fieldErrors, "age")
	assert.Contains(t, fieldErrors["age"][0], "out of range")
	assert.Empty(t, repo.Puts())
}

func TestAddPersonAllViolations(t *testing.T) {
	repo := repotest.NewFakePersonRepository()

	_, envelope := addPerson(t, repo, `{"firstName":"","lastName":"","age":-1}`)

	var fieldErrors map[string][]string
	require.NoError(t, json.Unmarshal(envelope.Errors, &fieldErrors))
	assert.Len(t, fieldErrors, 3)
}

func TestAddPersonMalformedBody(t *testing.T) {
	repo := repotest.NewFakePersonRepository()

	resp, envelope := addPerson(t, repo, `{"firstName": "Jane",`)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.False(t, envelope.Success)
	assert.Equal(t, "null", string(envelope.Data))

	var message string
	require.NoError(t, json.Unmarshal(envelope.Errors, &message))
	assert.NotEmpty(t, message)
	assert.Empty(t, repo.Puts())
}

func TestAddPersonAbsentBody(t *testing.T) {
	repo := repotest.NewFakePersonRepository()

	resp, _ := addPerson(t, repo, "")

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.JSONEq(t, `{"success":false,"data":null,"errors":"Invalid payload"}`, string(resp.Body))
}

func TestAddPersonStoreFailure(t *testing.T) {
	repo := repotest.NewFakePersonRepository()
	repo.PutErr = errors.New("ProvisionedThroughputExceededException: secret detail")

	resp, _ := addPerson(t, repo, `{"firstName":"Jane","lastName":"Doe","age":30}`)

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.JSONEq(t, `{"success":false,"data":null,"errors":"Error storing person info"}`, string(resp.Body))
	assert.NotContains(t, string(resp.Body), "secret detail")

	// exactly one attempt, no retry
	assert.Len(t, repo.Puts(), 1)
}

func TestHandleUnexpectedError(t *testing.T) {
	endpoint := Handle("boom", func(ctx context.Context, req *model.AddPersonRequest) (any, error) {
		return nil, errors.New("unexpected")
	}, http.StatusOK, func() *model.AddPersonRequest { return &model.AddPersonRequest{} })

	resp := endpoint(context.Background(), []byte(`{"firstName":"Jane","lastName":"Doe","age":30}`))

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.JSONEq(t, `{"success":false,"data":null,"errors":"Internal Server Error"}`, string(resp.Body))
}

func TestHandleHTTPErrorFromHandler(t *testing.T) {
	endpoint := Handle("missing", func(ctx context.Context, req *model.AddPersonRequest) (any, error) {
		return nil, errs.NewNotFoundError("nope")
	}, http.StatusOK, func() *model.AddPersonRequest { return &model.AddPersonRequest{} })

	resp := endpoint(context.Background(), []byte(`{"firstName":"Jane","lastName":"Doe","age":30}`))

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.JSONEq(t, `{"success":false,"data":null,"errors":"nope"}`, string(resp.Body))
}
