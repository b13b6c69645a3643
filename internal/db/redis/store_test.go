package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/rueidis"
	"github.com/redis/rueidis/mock"
	"go.uber.org/mock/gomock"

	"github.com/kailas-cloud/roommatch/internal/db"
)

// --- client.go tests ---

func TestPing_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := mock.NewClient(ctrl)

	c.EXPECT().
		Do(gomock.Any(), mock.Match("PING")).
		Return(mock.Result(mock.RedisString("PONG")))

	s := NewStoreForTest(c)
	if err := s.Ping(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestPing_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := mock.NewClient(ctrl)

	c.EXPECT().
		Do(gomock.Any(), mock.Match("PING")).
		Return(mock.ErrorResult(context.DeadlineExceeded))

	s := NewStoreForTest(c)
	if err := s.Ping(context.Background()); err == nil {
		t.Fatal("expected error")
	}
}

func TestWaitForReady_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := mock.NewClient(ctrl)

	c.EXPECT().
		Do(gomock.Any(), mock.Match("PING")).
		Return(mock.Result(mock.RedisString("PONG")))

	s := NewStoreForTest(c)
	if err := s.WaitForReady(context.Background(), time.Second); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestWaitForReady_Timeout(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := mock.NewClient(ctrl)

	c.EXPECT().
		Do(gomock.Any(), mock.Match("PING")).
		Return(mock.ErrorResult(errors.New("connection refused"))).
		AnyTimes()

	s := NewStoreForTest(c)
	if err := s.WaitForReady(context.Background(), 250*time.Millisecond); err == nil {
		t.Fatal("expected timeout error")
	}
}

func TestNewStore_RequiresAddrs(t *testing.T) {
	if _, err := NewStore(Config{}); err == nil {
		t.Fatal("expected error")
	}
}

// --- hash.go tests ---

func TestHSet_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := mock.NewClient(ctrl)

	c.EXPECT().
		Do(gomock.Any(), mock.MatchFn(func(cmd []string) bool {
			return cmd[0] == "HSET" && cmd[1] == "mykey"
		})).
		Return(mock.Result(mock.RedisInt64(1)))

	s := NewStoreForTest(c)
	err := s.HSet(context.Background(), "mykey", map[string]string{"f1": "v1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestHSet_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := mock.NewClient(ctrl)

	c.EXPECT().
		Do(gomock.Any(), mock.MatchFn(func(cmd []string) bool {
			return cmd[0] == "HSET"
		})).
		Return(mock.ErrorResult(context.DeadlineExceeded))

	s := NewStoreForTest(c)
	err := s.HSet(context.Background(), "mykey", map[string]string{"f": "v"})
	if err == nil {
		t.Fatal("expected error")
	}
	if !isDBError(err) {
		t.Errorf("expected db.Error, got %T", err)
	}
}

func TestHGetAll_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := mock.NewClient(ctrl)

	c.EXPECT().
		Do(gomock.Any(), mock.Match("HGETALL", "mykey")).
		Return(mock.Result(mock.RedisMap(map[string]rueidis.RedisMessage{
			"f1": mock.RedisString("v1"),
			"f2": mock.RedisString("v2"),
		})))

	s := NewStoreForTest(c)
	m, err := s.HGetAll(context.Background(), "mykey")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m["f1"] != "v1" || m["f2"] != "v2" {
		t.Errorf("unexpected map: %v", m)
	}
}

func TestHGetAll_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := mock.NewClient(ctrl)

	c.EXPECT().
		Do(gomock.Any(), mock.Match("HGETALL", "mykey")).
		Return(mock.ErrorResult(context.DeadlineExceeded))

	s := NewStoreForTest(c)
	_, err := s.HGetAll(context.Background(), "mykey")
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestHGetAllMulti_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := mock.NewClient(ctrl)

	c.EXPECT().
		DoMulti(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]rueidis.RedisResult{
			mock.Result(mock.RedisMap(map[string]rueidis.RedisMessage{
				"f": mock.RedisString("a"),
			})),
			mock.Result(mock.RedisMap(map[string]rueidis.RedisMessage{
				"f": mock.RedisString("b"),
			})),
		})

	s := NewStoreForTest(c)
	results, err := s.HGetAllMulti(context.Background(), []string{"k1", "k2"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0]["f"] != "a" || results[1]["f"] != "b" {
		t.Errorf("unexpected results: %v", results)
	}
}

func TestHGetAllMulti_Empty(t *testing.T) {
	s := NewStoreForTest(nil) // client not called
	results, err := s.HGetAllMulti(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if results != nil {
		t.Errorf("expected nil, got %v", results)
	}
}

func TestDel_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := mock.NewClient(ctrl)

	c.EXPECT().
		Do(gomock.Any(), mock.Match("DEL", "mykey")).
		Return(mock.Result(mock.RedisInt64(1)))

	s := NewStoreForTest(c)
	if err := s.Del(context.Background(), "mykey"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestExists(t *testing.T) {
	tests := []struct {
		name  string
		reply int64
		want  bool
	}{
		{"present", 1, true},
		{"absent", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			c := mock.NewClient(ctrl)

			c.EXPECT().
				Do(gomock.Any(), mock.Match("EXISTS", "mykey")).
				Return(mock.Result(mock.RedisInt64(tt.reply)))

			s := NewStoreForTest(c)
			got, err := s.Exists(context.Background(), "mykey")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Exists() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestScan_MultiPage(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := mock.NewClient(ctrl)

	first := true
	c.EXPECT().
		Do(gomock.Any(), mock.MatchFn(func(cmd []string) bool {
			return cmd[0] == "SCAN"
		})).
		DoAndReturn(func(_ context.Context, _ rueidis.Completed) rueidis.RedisResult {
			if first {
				first = false
				return mock.Result(mock.RedisArray(
					mock.RedisInt64(42), // cursor=42 means more
					mock.RedisArray(mock.RedisString("key1")),
				))
			}
			return mock.Result(mock.RedisArray(
				mock.RedisInt64(0), // cursor=0 means done
				mock.RedisArray(mock.RedisString("key2")),
			))
		}).Times(2)

	s := NewStoreForTest(c)
	keys, err := s.Scan(context.Background(), "prefix:*")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(keys) != 2 || keys[0] != "key1" || keys[1] != "key2" {
		t.Fatalf("unexpected keys: %v", keys)
	}
}

// --- kv.go tests ---

func TestGet_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := mock.NewClient(ctrl)

	c.EXPECT().
		Do(gomock.Any(), mock.Match("GET", "mykey")).
		Return(mock.Result(mock.RedisBlobString("value")))

	s := NewStoreForTest(c)
	data, err := s.Get(context.Background(), "mykey")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(data) != "value" {
		t.Errorf("unexpected data: %s", data)
	}
}

func TestGet_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := mock.NewClient(ctrl)

	c.EXPECT().
		Do(gomock.Any(), mock.Match("GET", "mykey")).
		Return(mock.Result(mock.RedisNil()))

	s := NewStoreForTest(c)
	_, err := s.Get(context.Background(), "mykey")
	if !errors.Is(err, db.ErrKeyNotFound) {
		t.Errorf("expected ErrKeyNotFound, got %v", err)
	}
}

func TestGet_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := mock.NewClient(ctrl)

	c.EXPECT().
		Do(gomock.Any(), mock.Match("GET", "mykey")).
		Return(mock.ErrorResult(context.DeadlineExceeded))

	s := NewStoreForTest(c)
	_, err := s.Get(context.Background(), "mykey")
	if errors.Is(err, db.ErrKeyNotFound) {
		t.Error("should not be ErrKeyNotFound for network errors")
	}
	if !isDBError(err) {
		t.Errorf("expected db.Error, got %T", err)
	}
}

func TestMGet_SkipsMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := mock.NewClient(ctrl)

	c.EXPECT().
		DoMulti(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]rueidis.RedisResult{
			mock.Result(mock.RedisBlobString("a")),
			mock.Result(mock.RedisNil()),
		})

	s := NewStoreForTest(c)
	got, err := s.MGet(context.Background(), []string{"k1", "k2"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || string(got[0]) != "a" || got[1] != nil {
		t.Errorf("unexpected values: %q", got)
	}
}

func TestMGet_Empty(t *testing.T) {
	s := NewStoreForTest(nil)
	got, err := s.MGet(context.Background(), nil)
	if err != nil || got != nil {
		t.Errorf("MGet(nil) = %v, %v", got, err)
	}
}

func TestSetWithTTL(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := mock.NewClient(ctrl)

	c.EXPECT().
		Do(gomock.Any(), mock.Match("SET", "mykey", "myvalue", "EX", "60")).
		Return(mock.Result(mock.RedisString("OK")))
	c.EXPECT().
		Do(gomock.Any(), mock.Match("SET", "other", "v")).
		Return(mock.Result(mock.RedisString("OK")))

	s := NewStoreForTest(c)
	if err := s.SetWithTTL(context.Background(), "mykey", []byte("myvalue"), time.Minute); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.SetWithTTL(context.Background(), "other", []byte("v"), 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSetNX(t *testing.T) {
	tests := []struct {
		name  string
		reply rueidis.RedisMessage
		want  bool
	}{
		{"written", mock.RedisString("OK"), true},
		{"already present", mock.RedisNil(), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			c := mock.NewClient(ctrl)

			c.EXPECT().
				Do(gomock.Any(), mock.Match("SET", "k", "v", "NX")).
				Return(mock.Result(tt.reply))

			s := NewStoreForTest(c)
			got, err := s.SetNX(context.Background(), "k", []byte("v"))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("SetNX() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSetNX_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := mock.NewClient(ctrl)

	c.EXPECT().
		Do(gomock.Any(), mock.Match("SET", "k", "v", "NX")).
		Return(mock.ErrorResult(context.DeadlineExceeded))

	s := NewStoreForTest(c)
	if _, err := s.SetNX(context.Background(), "k", []byte("v")); !isDBError(err) {
		t.Errorf("expected db.Error, got %v", err)
	}
}

// --- helpers ---

// isDBError is a test helper for checking wrapped db.Error.
func isDBError(err error) bool {
	var dbErr *db.Error
	return errors.As(err, &dbErr)
}
