package site

// DefaultShell is the page shell used when the site directory has no
// index.html. It carries every region and template the section renderers
// write to.
const DefaultShell = `<!DOCTYPE html>
<html lang="tr">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>Foodee</title>
  <link rel="stylesheet" href="css/bootstrap.css">
  <link rel="stylesheet" href="css/swiper-bundle.min.css">
  <link rel="stylesheet" href="css/style.css">
</head>
<body>
<div id="page">
  <nav class="fh5co-nav" role="navigation">
    <div class="container">
      <div id="fh5co-logo"><a href="index.html" data-brand>Foodee</a></div>
      <ul class="menu-1">
        <li><a href="#fh5co-about" data-nav-section="about" data-nav-label>Hakkımızda</a></li>
        <li><a href="#fh5co-announcements" data-nav-section="announcements" data-nav-label>Duyurular</a></li>
        <li><a href="#fh5co-products" data-nav-section="products" data-nav-label>Ürünler</a></li>
        <li><a href="#fh5co-menus" data-nav-section="menu" data-nav-label>Menü</a></li>
        <li><a href="#fh5co-events" data-nav-section="events" data-nav-label>Etkinlikler</a></li>
        <li><a href="#fh5co-contact" data-nav-section="contact" data-nav-label>İletişim</a></li>
      </ul>
    </div>
  </nav>

  <header id="fh5co-header" class="fh5co-cover">
    <div class="display-t">
      <h1 id="hero-title">Foodee</h1>
      <h2 id="hero-subtitle">Taze, lezzetli, her gün.</h2>
    </div>
    <ul class="slides" id="hero-slides"></ul>
  </header>

  <div id="fh5co-about" class="fh5co-section">
    <div class="fh5co-2col fh5co-bg" id="about-image"></div>
    <div class="fh5co-2col fh5co-text">
      <h2 id="about-heading">Hakkımızda</h2>
      <div id="about-description"><p></p></div>
      <p><a href="#" id="about-cta" class="btn btn-primary btn-outline">Devamı</a></p>
    </div>
  </div>

  <div id="fh5co-announcements" class="fh5co-section">
    <div class="container">
      <div class="row" id="announcement-list"></div>
      <p class="text-center"><a href="duyurular.html" id="announcements-more" class="btn btn-primary btn-outline" style="display: none;">Tüm Duyurular</a></p>
    </div>
  </div>

  <div id="fh5co-products" class="fh5co-section">
    <div class="container">
      <h2 id="products-heading">Ürünlerimiz</h2>
      <p id="products-subheading"></p>
      <div class="swiper product-swiper">
        <div class="swiper-wrapper" id="product-slides"></div>
        <div class="swiper-pagination"></div>
        <div class="swiper-button-next"></div>
        <div class="swiper-button-prev"></div>
      </div>
    </div>
  </div>

  <div id="fh5co-testimonials" class="fh5co-section">
    <div class="container">
      <ul class="slides" id="quotes-list"></ul>
    </div>
  </div>

  <div id="fh5co-menus" class="fh5co-section">
    <div class="container">
      <h2 id="menu-heading">Menü</h2>
      <p id="menu-subheading"></p>
      <div class="row" id="menu-sections"></div>
      <p class="text-center"><a href="#fh5co-contact" id="menu-cta" class="btn btn-primary btn-outline">Rezervasyon</a></p>
    </div>
  </div>

  <div id="fh5co-events" class="fh5co-section">
    <div class="container">
      <h2 id="events-heading">Etkinlikler</h2>
      <p id="events-subheading"></p>
      <div class="row" id="events-list"></div>
    </div>
  </div>

  <div id="fh5co-contact" class="fh5co-section">
    <div class="container">
      <h2 id="contact-heading">İletişim</h2>
      <p id="contact-subheading"></p>
      <p id="contact-address"></p>
      <ul class="contact-info">
        <li><a href="#" id="contact-phone"></a></li>
        <li><a href="#" id="contact-email"></a></li>
        <li><a href="#" id="contact-website"></a></li>
      </ul>
      <form action="#"><input type="submit" id="contact-button" class="btn btn-primary" value="Gönder"></form>
    </div>
  </div>
</div>

<div class="modal fade" id="announcementModal" tabindex="-1" role="dialog" aria-labelledby="announcementModalLabel" aria-hidden="true">
  <div class="modal-dialog" role="document">
    <div class="modal-content">
      <div class="modal-header">
        <button type="button" class="close" data-dismiss="modal" aria-label="Kapat"><span aria-hidden="true">&times;</span></button>
        <h4 class="modal-title" id="announcementModalLabel"></h4>
        <small id="announcementModalDate"></small>
      </div>
      <div class="modal-body">
        <div id="announcementModalImage" class="announcement-modal-image" style="display: none;"></div>
        <div id="announcementModalBody"></div>
        <div id="announcementModalAttachments" style="display: none;">
          <h5>Ekler</h5>
          <ul id="announcementModalAttachmentList"></ul>
        </div>
      </div>
    </div>
  </div>
</div>

<template id="hero-slide-template"><li><div class="overlay-gradient"></div></li></template>
<template id="quote-template"><li><blockquote><p class="quote-text"></p><p><cite class="quote-author"></cite></p></blockquote></li></template>
<template id="menu-section-template"><div class="col-md-6 menu-section"><h2 class="menu-section-title"></h2><ul class="menu-items"></ul></div></template>
<template id="menu-item-template"><li class="menu-item"><figure><img class="menu-item-image img-responsive" src="" alt=""></figure><div><h3 class="menu-item-title"></h3><p class="menu-item-description"></p><span class="menu-item-price"></span></div></li></template>
<template id="event-card-template"><div class="col-md-4 event"><div class="fh5co-event"><h3 class="event-title"></h3><span class="event-date fh5co-event-meta"></span><p class="event-description"></p><p><a href="#" class="event-link btn btn-primary btn-outline">Detay</a></p></div></div></template>

<script src="js/jquery.min.js"></script>
<script src="js/bootstrap.min.js"></script>
<script src="js/swiper-bundle.min.js"></script>
</body>
</html>
`
