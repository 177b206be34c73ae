package main

import (
	"flag"
	"log"
	"time"

	"github.com/gomodule/redigo/redis"
	"github.com/google/uuid"

	"MyLists/list"
	"MyLists/redis_pool"
)

var fruits = []string{"Apple", "Orange", "Mango", "Lemon", "Star fruit"}

func main() {
	redisAddr := flag.String("redis", "", "Redis地址（host:port），为空时跳过连接池演示")
	flag.Parse()

	runID := uuid.NewString()
	log.SetPrefix("[" + runID[:8] + "] ")

	runScenarios()

	if *redisAddr != "" {
		if err := pingThroughPool(*redisAddr); err != nil {
			log.Fatalf("redis: %v", err)
		}
	}
}

func newFruitList() *list.List[string] {
	return list.FromSlice(fruits)
}

// runScenarios 依次演示链表的基本操作
func runScenarios() {
	l := newFruitList()
	first, _ := l.Get(0)
	last, _ := l.Get(4)
	log.Printf("push: length=%d get(0)=%q get(4)=%q", l.Len(), first, last)

	var shifted []string
	for !l.Empty() {
		v, _ := l.Shift()
		shifted = append(shifted, v)
	}
	log.Printf("shift: %v empty=%v", shifted, l.Empty())

	l = newFruitList()
	if err := l.Insert(3, "Durian"); err != nil {
		log.Printf("insert: %v", err)
	}
	log.Printf("insert(3): %v", l.Values())

	l = newFruitList()
	l.Remove(0)
	l.Remove(2)
	log.Printf("remove(0), remove(2): %v", l.Values())

	l.Clear()
	_, err := l.Get(0)
	log.Printf("clear: length=%d get(0) err=%v", l.Len(), err)

	l = newFruitList()
	it := l.Iterator()
	for it.HasNext() {
		v, _ := it.Next()
		log.Printf("next: %q", v)
	}
}

// pingThroughPool 通过连接池借出一个连接执行PING
func pingThroughPool(addr string) error {
	pool, err := redis_pool.NewRedisPool(4, 2, func() (redis.Conn, error) {
		return redis.Dial("tcp", addr, redis.DialConnectTimeout(2*time.Second))
	})
	if err != nil {
		return err
	}
	defer pool.Close()

	conn, err := pool.Get()
	if err != nil {
		return err
	}
	reply, err := redis.String(conn.Do("PING"))
	if releaseErr := pool.Release(conn); releaseErr != nil && err == nil {
		err = releaseErr
	}
	if err != nil {
		return err
	}
	log.Printf("pool %s: PING -> %s (idle=%d active=%d)", pool.ID(), reply, pool.Idle(), pool.Active())
	return nil
}
