package redis_pool

import (
	"errors"
	"sync"

	"github.com/gomodule/redigo/redis"
	"github.com/google/uuid"

	"MyLists/list"
)

var (
	RedisPoolCreateErr = errors.New("create RedisPool Error")
	ConnStatusErr      = errors.New("connection status error")
	RedisPoolCloseErr  = errors.New("redis pool has been closed")
)

// RedisPool 管理Redis连接的核心：连接池
// 空闲连接保存在单链表中，Release 从尾部 Push，Get 从头部 Shift，保证先进先出
type RedisPool struct {
	id          string                     // 连接池的唯一标识，用于日志
	idle        *list.List[redis.Conn]     // 管理所有空闲的连接，其长度不超过maxIdle
	factory     func() (redis.Conn, error) // 连接创建工厂，用于创建新的连接
	maxActive   int                        // 连接池中能够容纳的最大连接数量
	maxIdle     int                        // 空闲连接的最大数量
	currentSize int                        // 当前已经创建的连接的数量（包括正在使用的和空闲的）
	closed      bool                       // 连接池是否关闭
	mu          sync.Mutex                 // 保护idle、currentSize和closed的互斥锁（链表本身不是并发安全的）
	cond        *sync.Cond                 // 连接数达到上限时，Get在这里等待连接归还或连接池关闭
}

// NewRedisPool 创建一个Redis连接池
// maxActive: 连接池的最大连接数量
// maxIdle: 连接池的最大空闲数量
func NewRedisPool(maxActive int, maxIdle int, factory func() (redis.Conn, error)) (*RedisPool, error) {
	if maxActive <= 0 || maxIdle <= 0 || maxActive < maxIdle || factory == nil {
		return nil, RedisPoolCreateErr
	}

	p := &RedisPool{
		id:        uuid.NewString(),
		idle:      list.New[redis.Conn](),
		factory:   factory,
		maxActive: maxActive,
		maxIdle:   maxIdle,
	}
	p.cond = sync.NewCond(&p.mu)

	// 提前创建maxIdle个连接放到空闲链表中
	for i := 0; i < maxIdle; i++ {
		conn, err := factory()
		if err != nil {
			// 发生错误，将之前的所有已经创建的连接都关闭
			p.drainIdle()
			return nil, err
		}
		p.idle.Push(conn)
	}

	// 创建成功后再更新currentSize
	p.currentSize = maxIdle

	return p, nil
}

// ID 返回连接池的唯一标识
func (p *RedisPool) ID() string {
	return p.id
}

// Get 从连接池中（阻塞）获取一个链接
func (p *RedisPool) Get() (redis.Conn, error) {
	p.mu.Lock()

	for {
		if p.closed {
			p.mu.Unlock()
			return nil, RedisPoolCloseErr
		}

		// 首先尝试从空闲链表头部获取
		if conn, err := p.idle.Shift(); err == nil {
			p.mu.Unlock()
			return conn, nil
		}

		// 如果当前连接数未达到上限，则创建新的连接
		if p.currentSize < p.maxActive {
			p.currentSize++
			p.mu.Unlock() // 在调用factory之前解锁（因为网络请求的时延较大）

			// 调用factory执行实际的创建链接
			conn, err := p.factory()
			if err != nil {
				// 创建失败，需要把加上的currentSize减回去，空出的名额可能让等待者继续
				p.mu.Lock()
				p.currentSize--
				p.cond.Signal()
				p.mu.Unlock()
				return nil, err
			}
			return conn, nil
		}

		// 到此说明连接已达上限，需要等待一个连接被归还
		// note Wait会释放锁，被唤醒后重新加锁并再次检查所有条件
		p.cond.Wait()
	}
}

// Release 释放一个连接
func (p *RedisPool) Release(conn redis.Conn) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed { // 提前检查连接池是否被关闭，如果已经被关闭，则直接报错
		return RedisPoolCloseErr
	}

	if conn == nil {
		return ConnStatusErr
	}

	// 如果连接已经损坏，则应该直接关闭它，空出的名额唤醒一个等待者
	if err := conn.Err(); err != nil {
		conn.Close()
		p.currentSize--
		p.cond.Signal()
		return err
	}

	// 到此说明连接健康，空闲链表未满时放回尾部，连接被复用
	if p.idle.Len() < p.maxIdle {
		p.idle.Push(conn)
		p.cond.Signal()
		return nil
	}

	// 空闲链表已满，多余的连接应当直接关闭，同时总连接数应当-1
	p.currentSize--
	p.cond.Signal()
	return conn.Close()
}

// Close 关闭连接池
func (p *RedisPool) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	// 标记为closed，关闭空闲链表中的所有链接
	p.closed = true
	p.drainIdle()

	// 唤醒所有阻塞在Get上的调用者，它们会看到closed并返回错误
	p.cond.Broadcast()
}

// Idle 返回当前空闲连接的数量
func (p *RedisPool) Idle() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.idle.Len()
}

// Active 返回当前已经创建的连接数量（包括正在使用的和空闲的）
func (p *RedisPool) Active() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.currentSize
}

// drainIdle 依次取出并关闭所有空闲连接，调用方需要持有锁（或处于构造阶段）
func (p *RedisPool) drainIdle() {
	for !p.idle.Empty() {
		conn, _ := p.idle.Shift()
		conn.Close()
		if p.currentSize > 0 {
			p.currentSize--
		}
	}
}
