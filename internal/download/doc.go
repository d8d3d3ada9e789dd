// Package download implements the sequential batch downloader that writes
// per-verse audio clips to local storage. The whole batch aborts on the
// first failed clip.
package download
